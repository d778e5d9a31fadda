package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeel735/rewear/internal/application"
	"github.com/jeel735/rewear/pkg/validation"
)

func bindListingForm(t *testing.T, values url.Values) (*listingForm, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/listings", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req

	var form listingForm
	err := c.ShouldBind(&form)
	return &form, err
}

func baseListingValues() url.Values {
	return url.Values{
		"title":       {"Wool coat"},
		"description": {"Warm winter coat, barely worn"},
		"price":       {"120"},
		"location":    {"Oslo"},
		"country":     {"Norway"},
		"category":    {"outerwear"},
	}
}

func TestListingForm_MissingPriceRejected(t *testing.T) {
	values := baseListingValues()
	values.Del("price")

	_, err := bindListingForm(t, values)
	require.Error(t, err)
	details := validation.ToDetails(err)
	assert.Contains(t, details, "price")
}

func TestListingForm_ZeroPriceAccepted(t *testing.T) {
	values := baseListingValues()
	values.Set("price", "0")

	form, err := bindListingForm(t, values)
	require.NoError(t, err)
	require.NotNil(t, form.Price)
	assert.Equal(t, 0.0, *form.Price)
}

func TestListingForm_NegativePriceRejected(t *testing.T) {
	values := baseListingValues()
	values.Set("price", "-1")

	_, err := bindListingForm(t, values)
	require.Error(t, err)
	details := validation.ToDetails(err)
	assert.Contains(t, details, "price")
}

func TestListingForm_TypeSizeConditionOptional(t *testing.T) {
	form, err := bindListingForm(t, baseListingValues())
	require.NoError(t, err)
	assert.Empty(t, form.Type)
	assert.Empty(t, form.Size)
	assert.Empty(t, form.Condition)
}

// A bind failure must answer before the service is reached, so a handler with
// an empty service must not panic on a bad submission.
func TestListingCreate_BindFailureStopsAtHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validation.Init()

	h := NewListingHandler(&application.ListingService{}, logrus.New())
	r := gin.New()
	r.POST("/listings", h.Create)

	values := baseListingValues()
	values.Del("price")
	req := httptest.NewRequest(http.MethodPost, "/listings", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "price")
}
