package handlers

import (
	"influencer-api/helper"
	"influencer-api/middleware"
	"influencer-api/models"
	"influencer-api/serializers"
	"influencer-api/services"

	"github.com/gin-gonic/gin"
)

// AttributeHandler serves the list and create endpoints of tags and styles.
type AttributeHandler[T models.AttributeKind] struct {
	service services.AttributeService[T]
	Helper  *helper.HTTPHelper
}

func NewAttributeHandler[T models.AttributeKind](service services.AttributeService[T], h *helper.HTTPHelper) *AttributeHandler[T] {
	return &AttributeHandler[T]{service: service, Helper: h}
}

func (h *AttributeHandler[T]) List(c *gin.Context) {
	assignedOnly, err := helper.ParseAssignedOnly(c.Query("assigned_only"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	items, err := h.service.List(c.Request.Context(), middleware.UserID(c), assignedOnly)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", serializers.NewAttributes(items))
}

func (h *AttributeHandler[T]) Create(c *gin.Context) {
	var req models.CreateAttributeRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	item, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Created", serializers.NewAttribute(*item))
}
