package ulpforms

import (
	"strings"
	"testing"

	"github.com/goliatone/go-router"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestScreenController() *ScreenController {
	tx := &Transaction{
		State: "st-123",
		Errors: []TransactionError{
			{Message: "Wrong credentials"},
			{Field: "email", Message: "Email is taken"},
		},
		IsSignupEnabled: true,
	}
	screen := &Screen{
		Name:       "login",
		Texts:      map[string]string{"title": "Welcome"},
		SignupLink: "/u/signup?state=st-123",
	}

	return NewScreenController(
		WithScreenLoader(func(router.Context) (*Transaction, *Screen, error) {
			return tx, screen, nil
		}),
		WithScreenSubmitters(Submitters{
			Login:  &stubLoginSubmitter{},
			Signup: &stubSignupSubmitter{},
		}),
	)
}

func TestNewScreenControllerDefaults(t *testing.T) {
	ctrl := newTestScreenController()

	require.Equal(t, "/u/login", ctrl.Routes.Login)
	require.Equal(t, "/u/login-id", ctrl.Routes.LoginID)
	require.Equal(t, "/u/signup", ctrl.Routes.Signup)
	require.Equal(t, "login_id", ctrl.Views.LoginID)
}

func TestNewScreenControllerPanicsWithoutLoader(t *testing.T) {
	require.Panics(t, func() {
		NewScreenController(
			WithScreenSubmitters(Submitters{
				Login:  &stubLoginSubmitter{},
				Signup: &stubSignupSubmitter{},
			}),
		)
	})
}

func TestNewScreenControllerPanicsWithoutSubmitters(t *testing.T) {
	require.Panics(t, func() {
		NewScreenController(
			WithScreenLoader(func(router.Context) (*Transaction, *Screen, error) {
				return &Transaction{}, &Screen{}, nil
			}),
		)
	})
}

func TestLoginShowRendersScreenContext(t *testing.T) {
	ctrl := newTestScreenController()
	ctx := router.NewMockContext()

	ctx.On("Render", ctrl.Views.Login, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		vc, ok := args.Get(1).(router.ViewContext)
		require.True(t, ok, "expected router.ViewContext")

		require.Equal(t, map[string]string{"title": "Welcome"}, vc["texts"])
		require.Equal(t, "/u/signup?state=st-123", vc["signup_link"])
		require.Equal(t, true, vc["is_signup_enabled"])

		general, ok := vc["general_errors"].([]TransactionError)
		require.True(t, ok)
		require.Len(t, general, 1)
		require.Equal(t, "Wrong credentials", general[0].Message)

		fields, ok := vc["field_errors"].(map[string]string)
		require.True(t, ok)
		require.Equal(t, "Email is taken", fields["email"])
	})

	err := ctrl.LoginShow(ctx)
	require.NoError(t, err)
	ctx.AssertExpectations(t)
}

func TestSignupShowIncludesSelectionOptions(t *testing.T) {
	ctrl := newTestScreenController()
	ctx := router.NewMockContext()

	ctx.On("Render", ctrl.Views.Signup, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		vc, ok := args.Get(1).(router.ViewContext)
		require.True(t, ok, "expected router.ViewContext")

		months, ok := vc["months"].([]Option)
		require.True(t, ok)
		require.Len(t, months, 12)

		days, ok := vc["days"].([]Option)
		require.True(t, ok)
		require.Len(t, days, 31)

		require.Len(t, vc["genders"], 3)
		require.Len(t, vc["states"], 51)
	})

	err := ctrl.SignupShow(ctx)
	require.NoError(t, err)
	ctx.AssertExpectations(t)
}

func TestLoginIDShowRendersView(t *testing.T) {
	ctrl := newTestScreenController()
	ctx := router.NewMockContext()

	ctx.On("Render", ctrl.Views.LoginID, mock.Anything).Return(nil)

	err := ctrl.LoginIDShow(ctx)
	require.NoError(t, err)
	ctx.AssertExpectations(t)
}

func TestShowRendersErrorViewOnLoaderFailure(t *testing.T) {
	ctrl := NewScreenController(
		WithScreenLoader(func(router.Context) (*Transaction, *Screen, error) {
			return nil, nil, ErrMissingLookup
		}),
		WithScreenSubmitters(Submitters{
			Login:  &stubLoginSubmitter{},
			Signup: &stubSignupSubmitter{},
		}),
	)
	ctx := router.NewMockContext()

	ctx.On("Render", "errors/500", mock.Anything).Return(nil)

	err := ctrl.LoginShow(ctx)
	require.NoError(t, err)
	ctx.AssertExpectations(t)
}

func TestSendNavigatorRendersHiddenForm(t *testing.T) {
	ctx := router.NewMockContext()

	var sent []byte
	ctx.On("Send", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		sent = args.Get(0).([]byte)
	})

	nav := &sendNavigator{ctx: ctx}
	err := nav.SubmitRedirect("password", "st-123")
	require.NoError(t, err)
	require.True(t, nav.sent)

	doc := string(sent)
	require.True(t, strings.Contains(doc, `name="connection" value="password"`), doc)
	require.True(t, strings.Contains(doc, `name="state" value="st-123"`), doc)

	ctx.AssertExpectations(t)
}
