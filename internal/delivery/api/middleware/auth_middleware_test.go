package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestTargetBusinessID(t *testing.T) {
	identity := &service.Identity{UID: "uid-caller"}

	tests := []struct {
		name      string
		target    string
		body      string
		pathParam string
		want      string
	}{
		{name: "body wins", target: "/x?businessId=from-query", body: `{"businessId":"from-body"}`, pathParam: "from-path", want: "from-body"},
		{name: "query next", target: "/x?businessId=from-query", body: `{"other":1}`, pathParam: "from-path", want: "from-query"},
		{name: "path next", target: "/x", pathParam: "from-path", want: "from-path"},
		{name: "caller last", target: "/x", want: "uid-caller"},
		{name: "malformed body ignored", target: "/x", body: `{"businessId":`, want: "uid-caller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, tt.target, tt.body)
			if tt.pathParam != "" {
				c.SetParamNames(ParamBusinessID)
				c.SetParamValues(tt.pathParam)
			}

			assert.Equal(t, tt.want, targetBusinessID(c, identity))

			// The handler still sees the whole body.
			rest, err := io.ReadAll(c.Request().Body)
			require.NoError(t, err)
			assert.Equal(t, tt.body, string(rest))
		})
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(v *mockService.MockIdentityVerifier)
		wantOK bool
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "empty bearer", header: "Bearer "},
		{
			name:   "rejected token",
			header: "Bearer bad",
			setup: func(v *mockService.MockIdentityVerifier) {
				v.EXPECT().VerifyIDToken(mock.Anything, "bad").Return(nil, assert.AnError)
			},
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(v *mockService.MockIdentityVerifier) {
				v.EXPECT().VerifyIDToken(mock.Anything, "good").Return(&service.Identity{UID: "uid-1"}, nil)
			},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := mockService.NewMockIdentityVerifier(t)
			if tt.setup != nil {
				tt.setup(verifier)
			}
			m := NewAuthMiddleware(verifier, mockUsecase.NewMockOwnershipUsecase(t), slog.New(slog.NewTextHandler(io.Discard, nil)))

			c, _ := newTestContext(http.MethodGet, "/x", "")
			if tt.header != "" {
				c.Request().Header.Set(echo.HeaderAuthorization, tt.header)
			}

			called := false
			err := m.Authenticate(func(c echo.Context) error {
				called = true
				identity, ok := deliverycontext.GetIdentity(c)
				assert.True(t, ok)
				assert.Equal(t, "uid-1", identity.UID)

				return nil
			})(c)

			assert.Equal(t, tt.wantOK, called)
			if !tt.wantOK {
				assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
			}
		})
	}
}

func TestRequireBusinessOwner(t *testing.T) {
	t.Run("stores the authorized business", func(t *testing.T) {
		ownership := mockUsecase.NewMockOwnershipUsecase(t)
		business := &entity.Business{ID: "uid-1"}
		ownership.EXPECT().AuthorizeOwner(mock.Anything, "uid-1", "uid-1").Return(business, nil)
		m := NewAuthMiddleware(mockService.NewMockIdentityVerifier(t), ownership, slog.Default())

		c, _ := newTestContext(http.MethodPost, "/x", `{"businessId":"uid-1"}`)
		deliverycontext.SetIdentity(c, &service.Identity{UID: "uid-1"})

		err := m.RequireBusinessOwner(func(c echo.Context) error {
			got, ok := deliverycontext.GetBusiness(c)
			assert.True(t, ok)
			assert.Same(t, business, got)

			return nil
		})(c)

		assert.NoError(t, err)
	})

	t.Run("forbidden stops the chain", func(t *testing.T) {
		ownership := mockUsecase.NewMockOwnershipUsecase(t)
		ownership.EXPECT().AuthorizeOwner(mock.Anything, "uid-1", "uid-2").Return(nil, domainerrors.ErrForbidden)
		m := NewAuthMiddleware(mockService.NewMockIdentityVerifier(t), ownership, slog.Default())

		c, _ := newTestContext(http.MethodPost, "/x", `{"businessId":"uid-2"}`)
		deliverycontext.SetIdentity(c, &service.Identity{UID: "uid-1"})

		err := m.RequireBusinessOwner(func(echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		})(c)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("requires authentication first", func(t *testing.T) {
		m := NewAuthMiddleware(mockService.NewMockIdentityVerifier(t), mockUsecase.NewMockOwnershipUsecase(t), slog.Default())
		c, _ := newTestContext(http.MethodGet, "/x", "")

		err := m.RequireBusinessOwner(func(echo.Context) error { return nil })(c)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}
