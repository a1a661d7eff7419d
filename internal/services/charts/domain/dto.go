package domain

// ListInput is the discovery query payload
type ListInput struct {
	Filter FilterSpec  `json:"filter"`
	Rank   RankingSpec `json:"rank"`
	Page   Pagination  `json:"page"`
}

// RandomInput asks for up to Count random published charts
type RandomInput struct {
	Count     int   `json:"count" validate:"omitempty,min=1,max=50" example:"5"`
	StaffPick *bool `json:"staff_pick"`
}

// GetInput names a single chart
type GetInput struct {
	ID string `json:"id" validate:"required,min=1,max=64"`
}

// BatchInput names a set of charts to fetch in one round trip
type BatchInput struct {
	IDs []string `json:"ids" validate:"required,min=1,max=50,dive,required"`
}

// DeleteInput asks for a chart removal; confirm signals dependent files are handled
type DeleteInput struct {
	ID      string `json:"id" validate:"required"`
	Confirm bool   `json:"confirm"`
}

// MetadataInput carries a metadata patch for one chart
type MetadataInput struct {
	ID    string        `json:"id" validate:"required"`
	Patch MetadataPatch `json:"patch"`
}

// FilesInput carries a file hash patch for one chart
type FilesInput struct {
	ID    string    `json:"id" validate:"required"`
	Patch FilePatch `json:"patch"`
}

// StatusInput moves a chart between visibility states
type StatusInput struct {
	ID     string `json:"id" validate:"required"`
	Status Status `json:"status" validate:"required,oneof=PUBLIC PRIVATE UNLISTED"`
}

// ScheduleInput sets or clears a scheduled publish time (unix seconds)
type ScheduleInput struct {
	ID        string `json:"id" validate:"required"`
	PublishAt *int64 `json:"publish_at"`
}

// StaffPickInput toggles the staff pick flag; moderators only
type StaffPickInput struct {
	ID    string `json:"id" validate:"required"`
	Value bool   `json:"value"`
}

// LikeInput likes or unlikes a chart as the authenticated viewer
type LikeInput struct {
	ID string `json:"id" validate:"required"`
}
