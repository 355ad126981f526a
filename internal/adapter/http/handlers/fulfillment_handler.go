package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"shikkha/internal/adapter/http/dto/request"
	"shikkha/internal/adapter/http/dto/response"
	"shikkha/internal/usecase"
	"shikkha/pkg"

	"github.com/gin-gonic/gin"
)

// FulfillmentHandler covers free enrollment and the admin shipping actions
// on book purchases.

type FulfillmentHandler struct {
	enrollment  usecase.IEnrollmentUseCase
	fulfillment usecase.IFulfillmentUseCase
}

func NewFulfillmentHandler(enrollment usecase.IEnrollmentUseCase, fulfillment usecase.IFulfillmentUseCase) *FulfillmentHandler {
	return &FulfillmentHandler{enrollment: enrollment, fulfillment: fulfillment}
}

// EnrollFree enrolls the authenticated student in a free course.
func (h *FulfillmentHandler) EnrollFree(c *gin.Context) {
	studentID := strings.TrimSpace(c.GetHeader(userIDHeader))
	if studentID == "" {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var req request.FreeEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[enrollment][handler] free enroll start student_id=%s course_id=%s", studentID, req.CourseID)

	enrollment, err := h.enrollment.EnrollFree(c.Request.Context(), studentID, req.CourseID)
	if err != nil {
		log.Printf("[enrollment][handler] free enroll failed student_id=%s course_id=%s err=%v", studentID, req.CourseID, err)
		appErr := mapFulfillmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[enrollment][handler] free enroll success enrollment_id=%s", enrollment.ID)

	c.JSON(http.StatusCreated, response.FromEnrollment(enrollment))
}

// ShipPurchase marks a confirmed book purchase as shipped.
func (h *FulfillmentHandler) ShipPurchase(c *gin.Context) {
	purchaseID := c.Param("purchase_id")

	var req request.ShipPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[fulfillment][handler] ship start purchase_id=%s", purchaseID)

	purchase, err := h.fulfillment.Ship(c.Request.Context(), purchaseID, req.TrackingNumber)
	if err != nil {
		log.Printf("[fulfillment][handler] ship failed purchase_id=%s err=%v", purchaseID, err)
		appErr := mapFulfillmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookPurchase(purchase))
}

// DeliverPurchase marks a shipped book purchase as delivered.
func (h *FulfillmentHandler) DeliverPurchase(c *gin.Context) {
	purchaseID := c.Param("purchase_id")
	log.Printf("[fulfillment][handler] deliver start purchase_id=%s", purchaseID)

	purchase, err := h.fulfillment.Deliver(c.Request.Context(), purchaseID)
	if err != nil {
		log.Printf("[fulfillment][handler] deliver failed purchase_id=%s err=%v", purchaseID, err)
		appErr := mapFulfillmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookPurchase(purchase))
}

func mapFulfillmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPayerID),
		errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidPurchaseID),
		errors.Is(err, usecase.ErrInvalidTrackingNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCourseNotFound):
		return pkg.NewDomainErrorSimple("COURSE_NOT_FOUND", "Course not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPurchaseNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_NOT_FOUND", "Purchase not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCourseNotFree):
		return pkg.NewDomainErrorSimple("COURSE_NOT_FREE", "Course requires payment; use checkout", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCourseFull):
		return pkg.NewDomainErrorSimple("COURSE_FULL", "Course has no remaining capacity", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyEnrolled):
		return pkg.NewDomainErrorSimple("ALREADY_ENROLLED", "Student already enrolled in this course", http.StatusConflict)
	case errors.Is(err, usecase.ErrPurchaseNotShippable):
		return pkg.NewDomainErrorSimple("NOT_SHIPPABLE", "Purchase is not in a shippable state", http.StatusConflict)
	case errors.Is(err, usecase.ErrPurchaseNotShipped):
		return pkg.NewDomainErrorSimple("NOT_SHIPPED", "Purchase has not been shipped", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
