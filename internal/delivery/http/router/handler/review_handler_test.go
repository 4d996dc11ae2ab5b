package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReviewTestContext(t *testing.T, method, target, body string) (*mockUsecase.MockReviewUsecase, *ReviewHandler, echo.Context, *httptest.ResponseRecorder) {
	uc := mockUsecase.NewMockReviewUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewReviewHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return uc, h, c, rec
}

func TestReviewHandler_Submit(t *testing.T) {
	body := `{"product_id": 7, "grade": 4, "comment": "Solid build quality"}`
	uc, h, c, rec := newReviewTestContext(t, http.MethodPost, "/reviews", body)

	caller := entity.Identity{UserID: 42, Username: "shopper", Role: entity.RoleCustomer}
	c.Set("identity", caller)

	uc.EXPECT().
		SubmitReview(mock.Anything, caller, usecase.SubmitReviewInput{
			ProductID: 7,
			Grade:     4,
			Comment:   "Solid build quality",
		}).
		Return(&usecase.SubmitReviewOutput{ReviewID: 23, RatingID: 11, ProductRating: 4.5}, nil)

	err := h.Submit(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, `"ReviewID":23`)
}

func TestReviewHandler_Submit_GradeRejectedBeforeWorkflow(t *testing.T) {
	body := `{"product_id": 7, "grade": 9, "comment": "impossible grade"}`
	_, h, c, _ := newReviewTestContext(t, http.MethodPost, "/reviews", body)

	c.Set("identity", entity.Identity{UserID: 42, Username: "shopper", Role: entity.RoleCustomer})

	// The validator rejects the payload; the usecase must not be called.
	err := h.Submit(c)

	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestReviewHandler_Submit_MissingIdentity(t *testing.T) {
	body := `{"product_id": 7, "grade": 4, "comment": "stranger"}`
	_, h, c, _ := newReviewTestContext(t, http.MethodPost, "/reviews", body)

	err := h.Submit(c)

	require.Error(t, err)
}

func TestReviewHandler_Retract(t *testing.T) {
	uc, h, c, rec := newReviewTestContext(t, http.MethodDelete, "/admin/reviews/23", "")

	caller := entity.Identity{UserID: 1, Username: "root", Role: entity.RoleAdmin}
	c.Set("identity", caller)
	c.SetParamNames("id")
	c.SetParamValues("23")

	uc.EXPECT().RetractReview(mock.Anything, caller, int64(23)).Return(nil)

	err := h.Retract(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReviewHandler_Retract_BadID(t *testing.T) {
	_, h, c, rec := newReviewTestContext(t, http.MethodDelete, "/admin/reviews/abc", "")

	c.Set("identity", entity.Identity{UserID: 1, Username: "root", Role: entity.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Retract(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewHandler_ListByProduct(t *testing.T) {
	uc, h, c, rec := newReviewTestContext(t, http.MethodGet, "/reviews/product/7", "")

	c.SetParamNames("id")
	c.SetParamValues("7")

	uc.EXPECT().
		ListProductReviews(mock.Anything, int64(7)).
		Return([]*entity.Review{{ID: 1, ProductID: 7, Comment: "good"}}, nil)

	err := h.ListByProduct(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"comment":"good"`)
}
