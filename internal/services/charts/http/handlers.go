// Package http provides HTTP transport for the chart catalog
package http

import (
	stdhttp "net/http"

	"chartbox/internal/modkit/httpkit"
	perr "chartbox/internal/platform/errors"
	"chartbox/internal/platform/net/middleware"
	"chartbox/internal/services/charts/domain"
	svc "chartbox/internal/services/charts/service"
)

// Register mounts chart endpoints on the given router.
// Discovery endpoints are public (viewer identity optional); mutations sit
// behind bearer auth when an auth port is provided
func Register(r httpkit.Router, s *svc.Service, auth middleware.AuthPort, authz domain.AuthzPort) {
	h := &handlers{svc: s, authz: authz}

	discovery := func(pr httpkit.Router) {
		httpkit.PostJSON[domain.ListInput](pr, "/list", h.list)
		httpkit.PostJSON[domain.RandomInput](pr, "/random", h.random)
		httpkit.PostJSON[domain.GetInput](pr, "/get", h.get)
		httpkit.PostJSON[domain.BatchInput](pr, "/batch", h.batch)
		httpkit.PostJSON[domain.GetInput](pr, "/likes/trend", h.likeTrend)
	}

	mutations := func(pr httpkit.Router) {
		httpkit.PostJSON[domain.Draft](pr, "/create", h.create)
		httpkit.PostJSON[domain.DeleteInput](pr, "/delete", h.delete)
		httpkit.PostJSON[domain.MetadataInput](pr, "/metadata", h.updateMetadata)
		httpkit.PostJSON[domain.FilesInput](pr, "/files", h.updateFiles)
		httpkit.PostJSON[domain.StatusInput](pr, "/status", h.updateStatus)
		httpkit.PostJSON[domain.ScheduleInput](pr, "/schedule", h.updateSchedule)
		httpkit.PostJSON[domain.StaffPickInput](pr, "/staff-pick", h.staffPick)
		httpkit.PostJSON[domain.LikeInput](pr, "/like", h.like)
		httpkit.PostJSON[domain.LikeInput](pr, "/unlike", h.unlike)
	}
	if auth != nil {
		httpkit.Public(r, auth, discovery)
		httpkit.Protected(r, auth, mutations)
	} else {
		discovery(r)
		mutations(r)
	}
}

type handlers struct {
	svc   *svc.Service
	authz domain.AuthzPort
}

// ownerFor returns the ownership constraint for a mutation.
// Moderators get an empty owner, which disables the ownership predicate
func (h *handlers) ownerFor(r *stdhttp.Request) (string, error) {
	viewer, err := httpkit.Viewer(r)
	if err != nil {
		return "", err
	}
	if h.authz != nil {
		ok, err := h.authz.CanModerate(r.Context(), viewer)
		if err != nil {
			return "", err
		}
		if ok {
			return "", nil
		}
	}
	return viewer, nil
}

func (h *handlers) requireModerator(r *stdhttp.Request) error {
	viewer, err := httpkit.Viewer(r)
	if err != nil {
		return err
	}
	if h.authz == nil {
		return perr.Forbiddenf("moderation not available")
	}
	ok, err := h.authz.CanModerate(r.Context(), viewer)
	if err != nil {
		return err
	}
	if !ok {
		return perr.Forbiddenf("moderator role required")
	}
	return nil
}

// @Summary Discover charts (filter + rank + page)
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {object} domain.ListResult "ok"
// @Router /charts/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in.Filter, in.Rank, in.Page, httpkit.OptionalViewer(r))
}

// @Summary Random published charts
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.RandomInput true "Query"
// @Success 200 {array} domain.Chart "ok"
// @Router /charts/random [post]
func (h *handlers) random(r *stdhttp.Request, in domain.RandomInput) (any, error) {
	return h.svc.Random(r.Context(), in.Count, httpkit.OptionalViewer(r), in.StaffPick)
}

// @Summary Fetch one chart by id
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Query"
// @Success 200 {object} domain.Chart "ok"
// @Router /charts/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in.ID, httpkit.OptionalViewer(r))
}

// @Summary Fetch a batch of charts by id
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Query"
// @Success 200 {array} domain.Chart "ok"
// @Router /charts/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.GetBatch(r.Context(), in.IDs)
}

// @Summary Seven day cumulative like series
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Query"
// @Success 200 {array} domain.LikeTrendPoint "ok"
// @Router /charts/likes/trend [post]
func (h *handlers) likeTrend(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.LikeTrend(r.Context(), in.ID)
}

// @Summary Create a chart (always PRIVATE at insert)
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.Draft true "Draft"
// @Success 200 {object} string "new chart id"
// @Router /charts/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.Draft) (any, error) {
	viewer, err := httpkit.Viewer(r)
	if err != nil {
		return nil, err
	}
	in.Author = viewer
	return h.svc.Create(r.Context(), in)
}

// @Summary Delete a chart (confirm required; moderators bypass ownership)
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.DeleteInput true "Request"
// @Success 200 {object} domain.Chart "deleted row"
// @Router /charts/delete [post]
func (h *handlers) delete(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	owner, err := h.ownerFor(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Delete(r.Context(), in.ID, owner, in.Confirm)
}

// @Summary Patch chart metadata (at least one field)
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.MetadataInput true "Patch"
// @Success 200 {object} nil "ok"
// @Router /charts/metadata [post]
func (h *handlers) updateMetadata(r *stdhttp.Request, in domain.MetadataInput) (any, error) {
	return nil, h.svc.UpdateMetadata(r.Context(), in.ID, in.Patch)
}

// @Summary Patch chart file hashes (confirm required)
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.FilesInput true "Patch"
// @Success 200 {object} nil "ok"
// @Router /charts/files [post]
func (h *handlers) updateFiles(r *stdhttp.Request, in domain.FilesInput) (any, error) {
	return nil, h.svc.UpdateFiles(r.Context(), in.ID, in.Patch)
}

// @Summary Change chart visibility
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.StatusInput true "Request"
// @Success 200 {object} domain.StatusResult "ok"
// @Router /charts/status [post]
func (h *handlers) updateStatus(r *stdhttp.Request, in domain.StatusInput) (any, error) {
	owner, err := h.ownerFor(r)
	if err != nil {
		return nil, err
	}
	return h.svc.UpdateStatus(r.Context(), in.ID, in.Status, owner)
}

// @Summary Set or clear scheduled publish time
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.ScheduleInput true "Request"
// @Success 200 {object} domain.ScheduleResult "ok"
// @Router /charts/schedule [post]
func (h *handlers) updateSchedule(r *stdhttp.Request, in domain.ScheduleInput) (any, error) {
	owner, err := h.ownerFor(r)
	if err != nil {
		return nil, err
	}
	return h.svc.UpdateSchedule(r.Context(), in.ID, in.PublishAt, owner)
}

// @Summary Toggle staff pick (moderators only)
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.StaffPickInput true "Request"
// @Success 200 {object} domain.Chart "ok"
// @Router /charts/staff-pick [post]
func (h *handlers) staffPick(r *stdhttp.Request, in domain.StaffPickInput) (any, error) {
	if err := h.requireModerator(r); err != nil {
		return nil, err
	}
	return h.svc.SetStaffPick(r.Context(), in.ID, in.Value)
}

// @Summary Like a chart (idempotent)
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.LikeInput true "Request"
// @Success 200 {object} nil "ok"
// @Router /charts/like [post]
func (h *handlers) like(r *stdhttp.Request, in domain.LikeInput) (any, error) {
	viewer, err := httpkit.Viewer(r)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.AddLike(r.Context(), in.ID, viewer)
}

// @Summary Remove a like (idempotent)
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.LikeInput true "Request"
// @Success 200 {object} nil "ok"
// @Router /charts/unlike [post]
func (h *handlers) unlike(r *stdhttp.Request, in domain.LikeInput) (any, error) {
	viewer, err := httpkit.Viewer(r)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.RemoveLike(r.Context(), in.ID, viewer)
}
