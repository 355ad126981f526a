package request

// FreeEnrollmentRequest is the payload of POST /enrollments/free.

type FreeEnrollmentRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

// ShipPurchaseRequest is the admin payload of PATCH /purchases/:purchase_id/ship.

type ShipPurchaseRequest struct {
	TrackingNumber string `json:"trackingNumber" binding:"required"`
}
