package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"foundit-fast/internal/service/auth"
	"foundit-fast/internal/service/category"
	"foundit-fast/internal/service/match"
	"foundit-fast/internal/service/message"
	"foundit-fast/internal/service/notification"
	"foundit-fast/internal/service/post"
	"foundit-fast/internal/service/report"
	"foundit-fast/internal/service/user"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// serviceErrors maps the services' sentinel errors onto HTTP statuses so
// handlers can return them unwrapped and let the error handler pick the
// response. Anything not listed here falls through as a 500.
var serviceErrors = []struct {
	err     error
	status  int
	message string
}{
	{auth.ErrInvalidCredentials, fiber.StatusUnauthorized, "Invalid email or password"},
	{auth.ErrInvalidToken, fiber.StatusUnauthorized, "Invalid or expired token"},
	{auth.ErrAccountBlocked, fiber.StatusForbidden, "Your account has been blocked"},
	{auth.ErrEmailExists, fiber.StatusConflict, "Email already registered"},
	{auth.ErrUserNotFound, fiber.StatusNotFound, "User not found"},
	{auth.ErrInvalidOTP, fiber.StatusBadRequest, "Invalid or expired reset code"},
	{user.ErrUserNotFound, fiber.StatusNotFound, "User not found"},
	{user.ErrWrongPassword, fiber.StatusBadRequest, "Current password is incorrect"},
	{post.ErrPostNotFound, fiber.StatusNotFound, "Post not found"},
	{post.ErrNotOwner, fiber.StatusForbidden, "Only the owner or an admin can modify this post"},
	{post.ErrUnknownCategory, fiber.StatusBadRequest, "Unknown category"},
	{match.ErrMatchNotFound, fiber.StatusNotFound, "Match not found"},
	{notification.ErrNotificationNotFound, fiber.StatusNotFound, "Notification not found"},
	{notification.ErrNotRecipient, fiber.StatusForbidden, "You can only manage your own notifications"},
	{message.ErrMessageNotFound, fiber.StatusNotFound, "Message not found"},
	{message.ErrRecipientNotFound, fiber.StatusNotFound, "Recipient not found"},
	{message.ErrPostNotFound, fiber.StatusNotFound, "Post not found"},
	{message.ErrOwnPost, fiber.StatusBadRequest, "You cannot contact the owner of your own post"},
	{message.ErrAdminUnavailable, fiber.StatusServiceUnavailable, "Admin contact is not available right now"},
	{message.ErrNotParticipant, fiber.StatusForbidden, "You can only manage your own messages"},
	{category.ErrCategoryExists, fiber.StatusConflict, "Category already exists"},
	{category.ErrCategoryNotFound, fiber.StatusNotFound, "Category not found"},
	{report.ErrPostNotFound, fiber.StatusNotFound, "Post not found"},
	{report.ErrUserNotFound, fiber.StatusNotFound, "User not found"},
	{report.ErrSelfReport, fiber.StatusBadRequest, "You cannot report yourself"},
	{report.ErrAlreadyReported, fiber.StatusConflict, "You have already reported this user"},
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	errorCode := "INTERNAL_ERROR"

	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			err = fiber.NewError(se.status, se.message)
			break
		}
	}

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message

		switch code {
		case fiber.StatusBadRequest:
			errorCode = "BAD_REQUEST"
		case fiber.StatusUnauthorized:
			errorCode = "UNAUTHORIZED"
		case fiber.StatusForbidden:
			errorCode = "FORBIDDEN"
		case fiber.StatusNotFound:
			errorCode = "NOT_FOUND"
		case fiber.StatusConflict:
			errorCode = "CONFLICT"
		case fiber.StatusUnprocessableEntity:
			errorCode = "VALIDATION_ERROR"
		case fiber.StatusServiceUnavailable:
			errorCode = "SERVICE_UNAVAILABLE"
		}
	}

	traceID := uuid.New().String()[:8]

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: message,
		TraceID: traceID,
	})
}

func NewError(code int, message string) *fiber.Error {
	return fiber.NewError(code, message)
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func Conflict(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusConflict, message)
}
