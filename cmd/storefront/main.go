// Storefront de terminal de PureGlow.
//
//	storefront          abre la tienda (catálogo, carrito, lista de deseos, checkout)
//	storefront login    inicia sesión y la guarda en el almacenamiento local
//	storefront logout   cierra la sesión guardada
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhoicas/dailycare-store/internal/client"
	"github.com/jhoicas/dailycare-store/internal/domain/storefront"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/localstore"
	"github.com/jhoicas/dailycare-store/internal/interfaces/tui"
	"github.com/jhoicas/dailycare-store/pkg/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: "development", Level: cfg.LogLevel, Output: os.Stderr}).Component("storefront")

	if err := os.MkdirAll(filepath.Dir(cfg.SessionPath), 0o755); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}
	store, err := localstore.Open(cfg.SessionPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	session := storefront.NewSession(store)
	if err := session.Restore(ctx); err != nil {
		return fmt.Errorf("restaurar sesión: %w", err)
	}
	api := client.New(cfg.APIURL, client.WithToken(session.Token()))

	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}
	switch cmd {
	case "":
		return shop(cfg, api, session)
	case "login":
		email := ""
		if len(args) > 1 {
			email = args[1]
		}
		return login(ctx, api, session, email, log)
	case "logout":
		if err := session.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("Sesión cerrada")
		return nil
	default:
		return fmt.Errorf("comando desconocido %q (usa login, logout o ninguno)", cmd)
	}
}

func shop(cfg Config, api *client.Client, session *storefront.Session) error {
	app := tui.NewApp(api, session, tui.Options{
		Category:        cfg.Category,
		ShippingAddress: cfg.shippingAddress(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func login(ctx context.Context, api *client.Client, session *storefront.Session, email string, log *logger.Logger) error {
	form := tui.NewLoginForm(email)
	if _, err := tea.NewProgram(form).Run(); err != nil {
		return err
	}
	if !form.Submitted() {
		return errors.New("inicio de sesión cancelado")
	}
	email, password := form.Credentials()

	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	tok, err := api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	me, err := api.Me(ctx)
	if err != nil {
		return err
	}
	user := storefront.User{ID: me.ID, Email: me.Email, FullName: me.FullName, IsAdmin: me.IsAdmin}
	if me.Phone != nil {
		user.Phone = *me.Phone
	}
	if err := session.Login(ctx, user, tok.AccessToken); err != nil {
		return err
	}
	log.Info().Int64("user_id", me.ID).Bool("admin", me.IsAdmin).Msg("sesión guardada")
	fmt.Printf("Sesión iniciada como %s\n", me.Email)
	return nil
}
