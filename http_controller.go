package ulpforms

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
	"github.com/goliatone/go-router/flash"
)

// ContextLoader resolves the upstream transaction and screen snapshots for
// the current request, typically from the context document the authorization
// server provides for the active state token.
type ContextLoader func(ctx router.Context) (*Transaction, *Screen, error)

// Submitters groups the upstream submission collaborators used by the
// screen handlers.
type Submitters struct {
	Login     LoginSubmitter
	Signup    SignupSubmitter
	Federated FederatedSubmitter
	Passkey   PasskeySubmitter
}

func RegisterScreenRoutes[T any](app router.Router[T], opts ...ScreenControllerOption) {

	controller := NewScreenController(opts...)

	app.
		Get(controller.Routes.Login, controller.LoginShow).
		SetName("ul-login.get")
	app.
		Post(controller.Routes.Login, controller.LoginPost).
		SetName("ul-login.post")

	app.Get(controller.Routes.LoginID, controller.LoginIDShow).
		SetName("ul-login-id.get")
	app.Post(controller.Routes.LoginID, controller.LoginIDPost).
		SetName("ul-login-id.post")

	app.Get(controller.Routes.Signup, controller.SignupShow).
		SetName("ul-signup.get")
	app.Post(controller.Routes.Signup, controller.SignupPost).
		SetName("ul-signup.post")
}

type ScreenControllerRoutes struct {
	Login   string
	LoginID string
	Signup  string
}

type ScreenControllerViews struct {
	Login   string
	LoginID string
	Signup  string
}

type ScreenController struct {
	Debug        bool
	Logger       Logger
	Routes       *ScreenControllerRoutes
	Views        *ScreenControllerViews
	Loader       ContextLoader
	Submit       Submitters
	Lookup       ConnectionLookup
	ErrorHandler router.ErrorHandler
}

type ScreenControllerOption func(*ScreenController) *ScreenController

// WithScreenLoader wires the context loader. Required.
func WithScreenLoader(loader ContextLoader) ScreenControllerOption {
	return func(c *ScreenController) *ScreenController {
		c.Loader = loader
		return c
	}
}

// WithScreenSubmitters wires the upstream submitters. Login and Signup are
// required.
func WithScreenSubmitters(s Submitters) ScreenControllerOption {
	return func(c *ScreenController) *ScreenController {
		c.Submit = s
		return c
	}
}

// WithScreenLookup wires the user-lookup client used by the login-id probe.
func WithScreenLookup(l ConnectionLookup) ScreenControllerOption {
	return func(c *ScreenController) *ScreenController {
		c.Lookup = l
		return c
	}
}

// WithScreenLogger overrides the default logger.
func WithScreenLogger(l Logger) ScreenControllerOption {
	return func(c *ScreenController) *ScreenController {
		c.Logger = l
		return c
	}
}

// WithScreenDebug enables payload pretty-printing.
func WithScreenDebug(debug bool) ScreenControllerOption {
	return func(c *ScreenController) *ScreenController {
		c.Debug = debug
		return c
	}
}

func NewScreenController(opts ...ScreenControllerOption) *ScreenController {
	c := &ScreenController{
		Logger:       defLogger{},
		ErrorHandler: defaultErrHandler,
		Routes: &ScreenControllerRoutes{
			Login:   "/u/login",
			LoginID: "/u/login-id",
			Signup:  "/u/signup",
		},
		Views: &ScreenControllerViews{
			Login:   "login",
			LoginID: "login_id",
			Signup:  "signup",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Loader == nil {
		panic("Missing ContextLoader in screen controller...")
	}

	if c.Submit.Login == nil || c.Submit.Signup == nil {
		panic("Missing submitters in screen controller...")
	}

	return c
}

func (a *ScreenController) LoginShow(ctx router.Context) error {
	tx, screen, err := a.Loader(ctx)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	return ctx.Render(a.Views.Login, a.screenViewContext(tx, screen, router.ViewContext{
		"record": nil,
	}))
}

func (a *ScreenController) LoginPost(ctx router.Context) error {
	tx, screen, err := a.Loader(ctx)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	payload := new(LoginForm)
	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("login parse payload: %v", err)
		return flash.WithError(ctx, router.ViewContext{
			"error_message":  err.Error(),
			"system_message": "Error parsing body",
		}).Status(fiber.StatusBadRequest).Render(a.Views.Login, a.screenViewContext(tx, screen, router.ViewContext{
			"errors": map[string]string{"form": "Failed to parse form"},
			"record": payload,
		}))
	}

	if err := payload.Validate(screen.IsCaptchaAvailable); err != nil {
		return ctx.Render(a.Views.Login, a.screenViewContext(tx, screen, router.ViewContext{
			"record":     payload,
			"validation": FormatValidationErrorToMap(err),
		}))
	}

	if a.Debug {
		fmt.Println("======= UL LOGIN ======")
		fmt.Println(print.MaybePrettyJSON(payload))
		fmt.Println("=======================")
	}

	manager := NewLoginManager(tx, screen, a.Submit.Login,
		WithLoginFederated(a.Submit.Federated),
		WithLoginLogger(a.Logger),
	)

	if err := manager.HandleLogin(ctx.Context(), payload.Email, payload.Password, payload.Captcha); err != nil {
		a.Logger.Error("login submit: %v", err)
		return ctx.Render(a.Views.Login, a.screenViewContext(tx, screen, router.ViewContext{
			"record": payload,
			"errors": map[string]string{"authentication": "Authentication Error"},
		}))
	}

	// Outcome surfaces through the next transaction snapshot.
	return ctx.Redirect(a.Routes.Login, router.StatusSeeOther)
}

func (a *ScreenController) LoginIDShow(ctx router.Context) error {
	tx, screen, err := a.Loader(ctx)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	return ctx.Render(a.Views.LoginID, a.screenViewContext(tx, screen, router.ViewContext{
		"record": nil,
	}))
}

func (a *ScreenController) LoginIDPost(ctx router.Context) error {
	tx, screen, err := a.Loader(ctx)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	payload := new(LoginIDForm)
	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("login-id parse payload: %v", err)
		return flash.WithError(ctx, router.ViewContext{
			"error_message":  err.Error(),
			"system_message": "Error parsing body",
		}).Status(fiber.StatusBadRequest).Render(a.Views.LoginID, a.screenViewContext(tx, screen, router.ViewContext{
			"errors": map[string]string{"form": "Failed to parse form"},
			"record": payload,
		}))
	}

	if err := payload.Validate(screen.IsCaptchaAvailable); err != nil {
		return ctx.Render(a.Views.LoginID, a.screenViewContext(tx, screen, router.ViewContext{
			"record":     payload,
			"validation": FormatValidationErrorToMap(err),
		}))
	}

	navigator := &sendNavigator{ctx: ctx}
	manager := NewLoginIDManager(tx, screen, a.Lookup,
		WithLoginIDNavigator(navigator),
		WithLoginIDFederated(a.Submit.Federated),
		WithLoginIDPasskey(a.Submit.Passkey),
		WithLoginIDLogger(a.Logger),
	)

	if err := manager.HandleLoginID(ctx.Context(), payload.Email, payload.Captcha); err != nil {
		a.Logger.Error("login-id probe: %v", err)
		return ctx.Render(a.Views.LoginID, a.screenViewContext(tx, screen, router.ViewContext{
			"record": payload,
			"errors": map[string]string{"authentication": "Authentication Error"},
		}))
	}

	if navigator.sent {
		return nil
	}

	// No known connection: the form stays in place for retry.
	return ctx.Render(a.Views.LoginID, a.screenViewContext(tx, screen, router.ViewContext{
		"record": payload,
	}))
}

func (a *ScreenController) SignupShow(ctx router.Context) error {
	tx, screen, err := a.Loader(ctx)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	return ctx.Render(a.Views.Signup, a.screenViewContext(tx, screen, router.ViewContext{
		"record":  SignupForm{},
		"months":  MonthOptions(),
		"days":    DayOptions(31),
		"genders": GenderOptions(),
		"states":  StateOptions(),
	}))
}

func (a *ScreenController) SignupPost(ctx router.Context) error {
	tx, screen, err := a.Loader(ctx)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	payload := new(SignupForm)
	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("signup parse payload: %v", err)
		return flash.WithError(ctx, router.ViewContext{
			"error_message":  err.Error(),
			"system_message": "Error parsing body",
		}).Status(fiber.StatusBadRequest).Render(a.Views.Signup, a.screenViewContext(tx, screen, router.ViewContext{
			"errors": map[string]string{"form": "Failed to parse form"},
			"record": payload,
		}))
	}

	if a.Debug {
		fmt.Println("======= UL SIGNUP ======")
		fmt.Println(print.MaybePrettyJSON(payload))
		fmt.Println("========================")
	}

	manager := NewSignupManager(tx, screen, a.Submit.Signup,
		WithSignupFederated(a.Submit.Federated),
		WithSignupLogger(a.Logger),
	)

	if err := manager.HandleSignup(ctx.Context(), *payload); err != nil {
		vmap := FormatValidationErrorToMap(err)
		if len(vmap) > 0 {
			a.Logger.Error("signup validate payload: %v", err)
			return flash.WithError(ctx, router.ViewContext{
				"error_message":  err.Error(),
				"system_message": "Error validating payload",
			}).Render(a.Views.Signup, a.screenViewContext(tx, screen, router.ViewContext{
				"record":     payload,
				"validation": vmap,
				"months":     MonthOptions(),
				"days":       DayOptions(DaysInMonth(atoiOrZero(payload.DOBMonth), atoiOrZero(payload.DOBYear))),
				"genders":    GenderOptions(),
				"states":     StateOptions(),
			}))
		}

		a.Logger.Error("signup submit: %v", err)
		return ctx.Render(a.Views.Signup, a.screenViewContext(tx, screen, router.ViewContext{
			"record": payload,
			"errors": map[string]string{"authentication": "Authentication Error"},
		}))
	}

	return flash.WithSuccess(ctx, router.ViewContext{
		"system_message": "Successful signup submission",
	}).Redirect(a.Routes.Signup, fiber.StatusSeeOther)
}

// screenViewContext merges the shared screen data every view receives.
func (a *ScreenController) screenViewContext(tx *Transaction, screen *Screen, extra router.ViewContext) router.ViewContext {
	vc := router.ViewContext{
		"texts":                      screen.Texts,
		"general_errors":             tx.GeneralErrors(),
		"field_errors":               tx.FieldErrors(),
		"signup_link":                screen.SignupLink,
		"login_link":                 screen.LoginLink,
		"reset_password_link":        screen.ResetPasswordLink,
		"captcha_image":              screen.CaptchaImage,
		"is_captcha_available":       screen.IsCaptchaAvailable,
		"is_signup_enabled":          tx.IsSignupEnabled,
		"is_forgot_password_enabled": tx.IsForgotPasswordEnabled,
		"is_passkey_enabled":         tx.IsPasskeyEnabled,
		"alternate_connections":      tx.AlternateConnections,
	}
	for k, v := range extra {
		vc[k] = v
	}
	return vc
}

// sendNavigator turns a redirect decision into the HTTP response for the
// active request: the rendered hidden-form document replaces the view.
type sendNavigator struct {
	ctx  router.Context
	nav  FormPostNavigator
	sent bool
}

func (s *sendNavigator) SubmitRedirect(connection, state string) error {
	html, err := s.nav.Render(connection, state)
	if err != nil {
		return err
	}
	s.sent = true
	return s.ctx.Send(html)
}

func defaultErrHandler(c router.Context, err error) error {
	return c.Render("errors/500", router.ViewContext{
		"message": err.Error(),
	})
}
