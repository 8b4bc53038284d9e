package initialize

import (
	"fmt"
	"net/http"

	"checkboard/app/controllers"
	jwtutil "checkboard/app/jwt"
	"checkboard/app/kv"
	"checkboard/app/middleware"
	"checkboard/app/services"
	"checkboard/config"
	"checkboard/global"
	"checkboard/router"
)

type App struct {
	Cfg    *config.Config
	Store  kv.Store
	Router http.Handler
	DB     *services.DatabaseService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg
	if err := ConfigureLogging(cfg.Log.Level, cfg.Log.Path); err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	// Open storage
	store, err := openStore(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	global.Store = store

	// Domain service
	db := services.NewDatabaseService(store, services.Options{
		Prefix:        cfg.Storage.Prefix,
		Logger:        global.Logger,
		AdminUsername: cfg.Admin.Username,
		AdminPassword: cfg.Admin.Password,
	})
	if err := db.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	mw := &middleware.Auth{Signer: signer}
	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(db, signer)
	adminCtrl := controllers.NewAdminController(db)
	checklistCtrl := controllers.NewChecklistController()
	assignmentCtrl := controllers.NewAssignmentController(db)
	progressCtrl := controllers.NewProgressController(db)
	maintCtrl := controllers.NewMaintenanceController(db)

	// Router
	h := router.NewRouter(httpCtrl, authCtrl, adminCtrl, checklistCtrl, assignmentCtrl, progressCtrl, maintCtrl, mw)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, Store: store, Router: h, DB: db}, nil
}

func openStore(cfg config.Storage) (kv.Store, error) {
	switch cfg.Driver {
	case "", "sqlite":
		return kv.OpenSQLite(cfg.Path)
	case "mysql":
		return kv.OpenMySQL(kv.MySQLConfig{
			Host:     cfg.MySQL.Host,
			Port:     cfg.MySQL.Port,
			User:     cfg.MySQL.User,
			Password: cfg.MySQL.Pass,
			DBName:   cfg.MySQL.Name,
		})
	case "redis":
		return kv.NewRedisStore(kv.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), nil
	case "memory":
		return kv.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
