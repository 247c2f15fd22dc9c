package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"github.com/tidwall/gjson"

	"sbs/src/models"
	"sbs/src/store"
	"sbs/src/types"
)

var testJwtKey = []byte(os.Getenv("JWT_SECRET"))

func signTestToken(userId string, name string, role string) string {
	claims := types.Claims{
		Name: name,
		Role: role,
		UID:  userId,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userId,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString(testJwtKey)
	return signed
}

type TestSuite struct {
	suite.Suite
	app    *app
	router *gin.Engine

	adminToken    string
	staffToken    string
	customerToken string

	adminId    string
	staffId    string
	customerId string
}

func (s *TestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	registerValidators()

	s.app = newApp(store.NewMemoryObjectStore(), nil)
	s.router = setupRouter()
	registerRoutes(s.router, s.app)

	ctx := context.Background()
	admin := s.app.team.Create(ctx, models.User{Name: "Asha", Email: "asha@example.com", Role: types.ROLE_ADMIN, Active: true})
	staff := s.app.team.Create(ctx, models.User{Name: "Ravi", Email: "ravi@example.com", Role: types.ROLE_STAFF, Specialty: "photography", Active: true})
	customer := s.app.team.Create(ctx, models.User{Name: "Meera", Email: "meera@example.com", Role: types.ROLE_CUSTOMER, Active: true})

	s.adminId, s.staffId, s.customerId = admin.ID, staff.ID, customer.ID
	s.adminToken = signTestToken(admin.ID, admin.Name, admin.Role)
	s.staffToken = signTestToken(staff.ID, staff.Name, staff.Role)
	s.customerToken = signTestToken(customer.ID, customer.Name, customer.Role)
}

func (s *TestSuite) request(method string, path string, token string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *TestSuite) createBooking(token string) string {
	body := `{
		"eventName": "Asha & Ravi",
		"eventType": "wedding",
		"venue": "Taj Palace",
		"packages": [
			{"name": "Wedding Photography", "category": "photography", "price": 50000, "startDate": "2025-01-01", "endDate": "2025-01-02"},
			{"name": "Candid Video", "category": "videography", "price": 75000, "startDate": "2025-01-03", "endDate": "2025-01-05"}
		]
	}`
	w := s.request("POST", "/api/v1/bookings", token, body)
	s.Require().Equal(http.StatusCreated, w.Code)
	return gjson.Get(w.Body.String(), "data.id").String()
}

func (s *TestSuite) TestPingRoute() {
	w := s.request("GET", "/", "", "")
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Unsetenv("MAINTENANCE_MODE")

	router := maintenanceModeMiddleware(setupRouter())
	registerRoutes(router, s.app)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/packages", nil)
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), http.StatusServiceUnavailable, w.Code)
}

func (s *TestSuite) TestAuthScoping() {
	w := s.request("GET", "/api/v1/bookings", "", "")
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	w = s.request("GET", "/api/v1/bookings", "not-a-token", "")
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	w = s.request("POST", "/api/v1/packages", s.customerToken, `{"category":"wedding","title":"x"}`)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	w = s.request("GET", "/api/v1/team", s.staffToken, "")
	assert.Equal(s.T(), http.StatusForbidden, w.Code)
}

func (s *TestSuite) TestCartValidation() {
	// end date before start date
	w := s.request("POST", "/api/v1/bookings", s.customerToken, `{
		"eventName": "Bad Dates",
		"packages": [{"name": "Shoot", "price": 1000, "startDate": "2025-05-10", "endDate": "2025-05-01"}]
	}`)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	// not a calendar date
	w = s.request("POST", "/api/v1/bookings", s.customerToken, `{
		"eventName": "Bad Format",
		"packages": [{"name": "Shoot", "price": 1000, "startDate": "05/10/2025", "endDate": "2025-05-10"}]
	}`)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	// empty cart
	w = s.request("POST", "/api/v1/bookings", s.customerToken, `{"eventName": "Empty", "packages": []}`)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestBookingLifecycle() {
	id := s.createBooking(s.customerToken)

	w := s.request("GET", "/api/v1/bookings/"+id, s.customerToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(s.T(), float64(125000), gjson.Get(body, "data.totalAmount").Float())
	assert.Equal(s.T(), "2025-01-01", gjson.Get(body, "data.startDate").String())
	assert.Equal(s.T(), "2025-01-05", gjson.Get(body, "data.endDate").String())
	assert.Equal(s.T(), "pending", gjson.Get(body, "data.status").String())

	// other customers cannot read it
	otherToken := signTestToken("someone-else", "Other", types.ROLE_CUSTOMER)
	w = s.request("GET", "/api/v1/bookings/"+id, otherToken, "")
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	// unassigned staff cannot read it either
	w = s.request("GET", "/api/v1/bookings/"+id, s.staffToken, "")
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	// admin assigns the staff member
	assignment := fmt.Sprintf(`{"memberId": %q, "category": "photography"}`, s.staffId)
	w = s.request("POST", "/api/v1/bookings/"+id+"/assignments", s.adminToken, assignment)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request("POST", "/api/v1/bookings/"+id+"/assignments", s.adminToken, assignment)
	assert.Equal(s.T(), http.StatusConflict, w.Code)

	// assigned staff can now read the booking
	w = s.request("GET", "/api/v1/bookings/"+id, s.staffToken, "")
	assert.Equal(s.T(), http.StatusOK, w.Code)

	// staff cannot sign off someone else's work
	w = s.request("PUT", "/api/v1/bookings/"+id+"/assignments/complete", s.staffToken,
		`{"memberId": "someone-else", "category": "photography"}`)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	w = s.request("PUT", "/api/v1/bookings/"+id+"/assignments/complete", s.staffToken, assignment)
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), int64(100), gjson.Get(w.Body.String(), "progress.percentage").Int())

	w = s.request("GET", "/api/v1/bookings/"+id+"/progress", s.customerToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "data.completedTasks").Int())

	// status changes are admin-only
	w = s.request("PUT", "/api/v1/bookings/"+id+"/status", s.customerToken, `{"status": "approved"}`)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	w = s.request("PUT", "/api/v1/bookings/"+id+"/status", s.adminToken, `{"status": "approved"}`)
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), "approved", gjson.Get(w.Body.String(), "data.status").String())

	w = s.request("PUT", "/api/v1/bookings/"+id+"/status", s.adminToken, `{"status": "archived"}`)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestBookingListsByRole() {
	id := s.createBooking(s.customerToken)

	w := s.request("GET", "/api/v1/bookings", s.customerToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	listed := gjson.Get(w.Body.String(), "data.#.id").Array()
	found := false
	for _, v := range listed {
		found = found || v.String() == id
	}
	assert.True(s.T(), found, "customer list must contain their booking")

	// admin filter by venue
	w = s.request("GET", "/api/v1/bookings?venue=taj", s.adminToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Greater(s.T(), gjson.Get(w.Body.String(), "count").Int(), int64(0))

	w = s.request("GET", "/api/v1/bookings?venue=nowhere", s.adminToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), int64(0), gjson.Get(w.Body.String(), "count").Int())
}

func (s *TestSuite) TestBookingStats() {
	w := s.request("GET", "/api/v1/bookings/stats", s.customerToken, "")
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	w = s.request("GET", "/api/v1/bookings/stats", s.adminToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(s.T(), gjson.Get(body, "data.totalRevenue").Exists())
	assert.True(s.T(), gjson.Get(body, "data.outstanding").Exists())
}

func (s *TestSuite) TestPaymentsFlow() {
	id := s.createBooking(s.customerToken)

	w := s.request("POST", "/api/v1/payments", s.customerToken, fmt.Sprintf(`{"bookingId": %q, "amount": 25000}`, id))
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	w = s.request("POST", "/api/v1/payments", s.adminToken, `{"bookingId": "missing", "amount": 25000}`)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)

	w = s.request("POST", "/api/v1/payments", s.adminToken, fmt.Sprintf(`{"bookingId": %q, "amount": 25000, "method": "cash"}`, id))
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.request("GET", "/api/v1/bookings/"+id, s.customerToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), float64(25000), gjson.Get(w.Body.String(), "data.paidAmount").Float())

	w = s.request("GET", "/api/v1/payments?booking="+id, s.adminToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "count").Int())

	// customers only ever see their own payments
	w = s.request("GET", "/api/v1/payments", s.customerToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	for _, uid := range gjson.Get(w.Body.String(), "data.#.userId").Array() {
		assert.Equal(s.T(), s.customerId, uid.String())
	}
}

func (s *TestSuite) TestPackagesPublicReadAdminWrite() {
	w := s.request("POST", "/api/v1/packages", s.adminToken, `{
		"category": "wedding",
		"title": "Classic Wedding",
		"packages": [{"name": "Full Day", "price": 50000}]
	}`)
	s.Require().Equal(http.StatusCreated, w.Code)
	id := gjson.Get(w.Body.String(), "data.id").String()

	// no token needed to browse
	w = s.request("GET", "/api/v1/packages?category=wedding", "", "")
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Greater(s.T(), gjson.Get(w.Body.String(), "count").Int(), int64(0))

	w = s.request("PATCH", "/api/v1/packages/"+id, s.adminToken, `{"title": "Classic Wedding Deluxe"}`)
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), "Classic Wedding Deluxe", gjson.Get(w.Body.String(), "data.title").String())

	w = s.request("DELETE", "/api/v1/packages/"+id, s.adminToken, "")
	assert.Equal(s.T(), http.StatusNoContent, w.Code)
	w = s.request("DELETE", "/api/v1/packages/"+id, s.adminToken, "")
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *TestSuite) TestAttendanceFlow() {
	// staff always mark themselves, even with a foreign member id
	w := s.request("POST", "/api/v1/attendance", s.staffToken, `{"memberId": "someone-else", "date": "2025-02-01", "status": "present"}`)
	s.Require().Equal(http.StatusCreated, w.Code)
	assert.Equal(s.T(), s.staffId, gjson.Get(w.Body.String(), "data.memberId").String())

	w = s.request("POST", "/api/v1/attendance", s.staffToken, `{"date": "2025-02-01", "status": "present"}`)
	assert.Equal(s.T(), http.StatusConflict, w.Code)

	w = s.request("POST", "/api/v1/attendance", s.customerToken, `{"date": "2025-02-01", "status": "present"}`)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	w = s.request("GET", "/api/v1/attendance?date=2025-02-01", s.adminToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "count").Int())
}

func (s *TestSuite) TestContactIntake() {
	w := s.request("POST", "/api/v1/contact", "", `{
		"name": "Walk-in",
		"email": "walkin@example.com",
		"message": "Do you cover outdoor shoots?"
	}`)
	s.Require().Equal(http.StatusCreated, w.Code)
	id := gjson.Get(w.Body.String(), "data.id").String()

	w = s.request("POST", "/api/v1/contact", "", `{"name": "Walk-in", "email": "not-an-email", "message": "hi"}`)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	w = s.request("GET", "/api/v1/contact?unresolved=true", s.adminToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Greater(s.T(), gjson.Get(w.Body.String(), "count").Int(), int64(0))

	w = s.request("PUT", "/api/v1/contact/"+id+"/resolve", s.adminToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	assert.True(s.T(), gjson.Get(w.Body.String(), "data.resolved").Bool())
}

func (s *TestSuite) TestTeamManagement() {
	w := s.request("GET", "/api/v1/profile", s.staffToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), "Ravi", gjson.Get(w.Body.String(), "data.name").String())

	w = s.request("POST", "/api/v1/team", s.adminToken, `{
		"name": "Dev", "email": "dev@example.com", "role": "staff", "specialty": "photo_edit"
	}`)
	s.Require().Equal(http.StatusCreated, w.Code)
	id := gjson.Get(w.Body.String(), "data.id").String()

	w = s.request("POST", "/api/v1/team", s.adminToken, `{"name": "Dev Again", "email": "dev@example.com", "role": "staff"}`)
	assert.Equal(s.T(), http.StatusConflict, w.Code)

	w = s.request("GET", "/api/v1/team/specialists?category=photo_edit", s.adminToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "count").Int())

	w = s.request("PATCH", "/api/v1/team/"+id, s.adminToken, `{"active": false}`)
	s.Require().Equal(http.StatusOK, w.Code)

	// inactive members drop out of the specialist picker
	w = s.request("GET", "/api/v1/team/specialists?category=photo_edit", s.adminToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), int64(0), gjson.Get(w.Body.String(), "count").Int())

	w = s.request("DELETE", "/api/v1/team/"+id, s.adminToken, "")
	assert.Equal(s.T(), http.StatusNoContent, w.Code)
}

func (s *TestSuite) TestStripeWebhook() {
	os.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")
	defer os.Unsetenv("STRIPE_WEBHOOK_SECRET")

	id := s.createBooking(s.customerToken)
	payload := fmt.Sprintf(`{
		"id": "evt_1",
		"object": "event",
		"api_version": %q,
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_test_1",
			"object": "checkout.session",
			"amount_total": 2500000,
			"metadata": {"bookingId": %q}
		}}
	}`, stripe.APIVersion, id)

	now := time.Now()
	signature := hex.EncodeToString(webhook.ComputeSignature(now, []byte(payload), "whsec_test"))
	req, _ := http.NewRequest("POST", "/api/v1/webhook/stripe", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", fmt.Sprintf("t=%d,v1=%s", now.Unix(), signature))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusOK, w.Code)

	resp := s.request("GET", "/api/v1/bookings/"+id, s.customerToken, "")
	s.Require().Equal(http.StatusOK, resp.Code)
	assert.Equal(s.T(), float64(25000), gjson.Get(resp.Body.String(), "data.paidAmount").Float())

	resp = s.request("GET", "/api/v1/payments?booking="+id, s.adminToken, "")
	s.Require().Equal(http.StatusOK, resp.Code)
	assert.Equal(s.T(), "stripe", gjson.Get(resp.Body.String(), "data.0.method").String())

	// a bad signature never reaches the booking
	req, _ = http.NewRequest("POST", "/api/v1/webhook/stripe", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", "t=0,v1=deadbeef")
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestSettings() {
	w := s.request("PUT", "/api/v1/settings", s.adminToken, `{"settingKey": "studio.tagline", "group": "general", "settingValue": "Moments, kept."}`)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request("GET", "/api/v1/settings/studio.tagline", s.adminToken, "")
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), "Moments, kept.", gjson.Get(w.Body.String(), "data.settingValue").String())

	// upsert overwrites in place
	w = s.request("PUT", "/api/v1/settings", s.adminToken, `{"settingKey": "studio.tagline", "group": "general", "settingValue": "Updated"}`)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request("DELETE", "/api/v1/settings/studio.tagline", s.adminToken, "")
	assert.Equal(s.T(), http.StatusNoContent, w.Code)
	w = s.request("GET", "/api/v1/settings/studio.tagline", s.adminToken, "")
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func TestSuiteRun(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
