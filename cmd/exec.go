package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"evently/config"
	"evently/flow"
	"evently/internal/backend"
	"evently/models"
	"evently/monitoring"
	"evently/screens"
)

// errQuit unwinds the screen loop when the user exits.
var errQuit = errors.New("quit")

func Start() error {
	cfg := config.LoadConfig()

	clients, err := backend.NewClients(cfg)
	if err != nil {
		return err
	}
	defer clients.Announce.Close()

	if cfg.EnableMetrics {
		go monitoring.Serve(cfg.MetricsPort)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup graceful shutdown
	go handleShutdown(cancel)

	a := &app{
		cfg:     cfg,
		clients: clients,
		router:  flow.NewRouter(),
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
	}

	if err := a.run(ctx); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// app drives the five screens over the terminal. Each screen handler owns
// its view state for as long as its route is active and drops it when the
// route changes.
type app struct {
	cfg     *config.Config
	clients *backend.Clients
	router  *flow.Router
	in      *bufio.Scanner
	out     io.Writer
}

func (a *app) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch a.router.Current() {
		case flow.RouteLanding:
			err = a.runLanding()
		case flow.RouteLogin:
			err = a.runLogin(ctx)
		case flow.RouteRegister:
			err = a.runRegister(ctx)
		case flow.RouteHome:
			err = a.runHome(ctx)
		case flow.RouteAdmin:
			err = a.runAdmin(ctx)
		default:
			err = fmt.Errorf("run: unknown route %q", a.router.Current())
		}
		if err != nil {
			return err
		}
	}
}

func (a *app) runLanding() error {
	landing := screens.NewLanding()
	fmt.Fprintf(a.out, "\n== %s ==\n%s\n\n", landing.Title(), landing.Tagline())
	fmt.Fprintln(a.out, "[1] Login  [2] Register  [q] Quit")

	switch a.readLine("> ") {
	case "1":
		return a.router.Navigate(flow.RouteLogin)
	case "2":
		return a.router.Navigate(flow.RouteRegister)
	case "q":
		return errQuit
	}
	return nil
}

func (a *app) runLogin(ctx context.Context) error {
	screen := screens.NewLogin(a.clients)

	for {
		fmt.Fprintln(a.out, "\n== Welcome Back! ==")
		fmt.Fprintln(a.out, `(type "register" to create an account)`)

		email := a.readLine("Email: ")
		if email == ":quit" {
			return errQuit
		}
		if email == "register" {
			return a.router.Navigate(flow.RouteRegister)
		}
		screen.Email = email
		screen.Password = a.readLine("Password: ")

		fmt.Fprintln(a.out, "Signing in...")
		cctx, cancel := context.WithTimeout(ctx, a.cfg.RequestTimeout)
		route, ok := screen.Submit(cctx)
		cancel()

		if !ok {
			fmt.Fprintf(a.out, "Error: %s\n", screen.ErrorMessage)
			continue
		}
		return a.router.NavigateClearing(route, flow.RouteLogin)
	}
}

func (a *app) runRegister(ctx context.Context) error {
	screen := screens.NewRegister(a.clients)

	for {
		fmt.Fprintln(a.out, "\n== Create an Account ==")
		fmt.Fprintln(a.out, `(type "login" if you already have one)`)

		email := a.readLine("Email: ")
		if email == ":quit" {
			return errQuit
		}
		if email == "login" {
			return a.router.Navigate(flow.RouteLogin)
		}
		screen.Email = email
		screen.Password = a.readLine("Password: ")
		screen.ConfirmPassword = a.readLine("Confirm Password: ")

		fmt.Fprintln(a.out, "Registering...")
		cctx, cancel := context.WithTimeout(ctx, a.cfg.RequestTimeout)
		route, ok := screen.Submit(cctx)
		cancel()

		if !ok {
			fmt.Fprintf(a.out, "Error: %s\n", screen.ErrorMessage)
			continue
		}

		fmt.Fprintln(a.out, "Registration successful!")
		return a.router.NavigateClearing(route, flow.RouteRegister)
	}
}

func (a *app) runHome(ctx context.Context) error {
	screen := screens.NewHome(a.clients)

	fmt.Fprintln(a.out, "\n== Upcoming Events ==")
	fmt.Fprintln(a.out, "Loading events...")

	cctx, cancel := context.WithTimeout(ctx, a.cfg.RequestTimeout)
	screen.Load(cctx)
	cancel()

	if screen.ErrorMessage != "" {
		fmt.Fprintf(a.out, "Error: %s\n", screen.ErrorMessage)
	}

	// Announcements from other sessions surface while this screen is up.
	actx, acancel := context.WithCancel(ctx)
	defer acancel()
	go a.clients.Announce.Listen(actx, func(ann *models.Announcement) {
		fmt.Fprintf(a.out, "\n>> New event announced: %s at %s\n", ann.Name, ann.Location)
	})

	for {
		a.renderEvents(screen)

		input := a.readLine(`Search events (":quit" to exit): `)
		if input == ":quit" {
			return errQuit
		}
		screen.SetQuery(input)
	}
}

func (a *app) renderEvents(screen *screens.Home) {
	if screen.Empty() {
		fmt.Fprintln(a.out, "No events match your search.")
		return
	}
	for _, e := range screen.Filtered {
		fmt.Fprintf(a.out, "- %s @ %s  $%.2f  %s\n", e.Name, e.Location, e.Price, e.Image)
	}
}

func (a *app) runAdmin(ctx context.Context) error {
	screen := screens.NewAdmin(a.clients)

	for {
		fmt.Fprintln(a.out, "\n== Create Event ==")

		name := a.readLine(adminPrompt("Event Name", screen.Name))
		if name == ":quit" {
			return errQuit
		}
		if name != "" {
			screen.Name = name
		}

		screen.Location = a.readLineDefault("Event Location", screen.Location)
		screen.Price = a.readLineDefault("Event Price", screen.Price)

		imagePath := a.readLineDefault("Image path", screen.ImagePath)
		if imagePath != "" && imagePath != screen.ImagePath {
			if err := screen.SelectImage(imagePath); err != nil {
				fmt.Fprintf(a.out, "Error: %s\n", screen.ErrorMessage)
				continue
			}
		}

		fmt.Fprintln(a.out, "Creating event...")
		cctx, cancel := context.WithTimeout(ctx, a.cfg.UploadTimeout)
		route, ok := screen.Submit(cctx)
		cancel()

		if !ok {
			fmt.Fprintf(a.out, "Error: %s\n", screen.ErrorMessage)
			continue
		}

		fmt.Fprintln(a.out, "Event Created Successfully!")
		return a.router.Navigate(route)
	}
}

func (a *app) readLine(prompt string) string {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		slog.Info("input closed, exiting")
		return ":quit"
	}
	return strings.TrimSpace(a.in.Text())
}

// readLineDefault keeps the previous value on empty input so a failed
// submit leaves the form populated for correction.
func (a *app) readLineDefault(label, current string) string {
	value := a.readLine(adminPrompt(label, current))
	if value == "" || value == ":quit" {
		return current
	}
	return value
}

func adminPrompt(label, current string) string {
	if current != "" {
		return fmt.Sprintf("%s [%s]: ", label, current)
	}
	return label + ": "
}

// handleShutdown handles graceful shutdown
func handleShutdown(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	slog.Info("shutdown signal received, cleaning up")
	cancel()
}
