package handlers

import (
	"errors"
	"io"
	"net/http"

	"influencer-api/helper"
	"influencer-api/middleware"
	"influencer-api/models"
	"influencer-api/serializers"
	"influencer-api/services"

	"github.com/gin-gonic/gin"
)

type InfluencerHandler struct {
	influencerService services.InfluencerService
	maxUploadBytes    int64
	Helper            *helper.HTTPHelper
}

func NewInfluencerHandler(influencerService services.InfluencerService, maxUploadBytes int64, h *helper.HTTPHelper) *InfluencerHandler {
	return &InfluencerHandler{
		influencerService: influencerService,
		maxUploadBytes:    maxUploadBytes,
		Helper:            h,
	}
}

func (h *InfluencerHandler) GetInfluencers(c *gin.Context) {
	var filter models.InfluencerFilter
	var err error

	if filter.TagIDs, err = helper.ParseIDList("tags", c.Query("tags")); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	if filter.StyleIDs, err = helper.ParseIDList("styles", c.Query("styles")); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	influencers, err := h.influencerService.List(c.Request.Context(), middleware.UserID(c), filter)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", serializers.NewInfluencers(influencers))
}

func (h *InfluencerHandler) CreateInfluencer(c *gin.Context) {
	var req models.InfluencerRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	influencer, err := h.influencerService.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Influencer created", serializers.NewInfluencer(*influencer))
}

func (h *InfluencerHandler) GetInfluencer(c *gin.Context) {
	id, err := helper.ParseID(c.Param("id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	influencer, err := h.influencerService.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", serializers.NewInfluencerDetail(*influencer, h.influencerService.ImageURL))
}

func (h *InfluencerHandler) UpdateInfluencer(c *gin.Context) {
	id, err := helper.ParseID(c.Param("id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	var req models.InfluencerRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	influencer, err := h.influencerService.Update(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Influencer updated", serializers.NewInfluencer(*influencer))
}

func (h *InfluencerHandler) PatchInfluencer(c *gin.Context) {
	id, err := helper.ParseID(c.Param("id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	var req models.InfluencerPatchRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	influencer, err := h.influencerService.PartialUpdate(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Influencer updated", serializers.NewInfluencer(*influencer))
}

func (h *InfluencerHandler) DeleteInfluencer(c *gin.Context) {
	id, err := helper.ParseID(c.Param("id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	if err := h.influencerService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}

func (h *InfluencerHandler) UploadProfileImage(c *gin.Context) {
	id, err := helper.ParseID(c.Param("id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	fileHeader, err := c.FormFile("profile_image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.Helper.SendFieldErrors(c, map[string][]string{"profile_image": {"The uploaded file is too large."}})
			return
		}
		h.Helper.SendFieldErrors(c, map[string][]string{"profile_image": {"No file was submitted."}})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	influencer, err := h.influencerService.UploadImage(c.Request.Context(), middleware.UserID(c), id, fileHeader.Filename, data)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile image uploaded", serializers.NewInfluencerImage(*influencer, h.influencerService.ImageURL))
}
