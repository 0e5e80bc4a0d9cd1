package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"rentcar-service/internal/handler"
	mid "rentcar-service/internal/middleware"
	"rentcar-service/internal/renta"
	"rentcar-service/pkg/config"
	"rentcar-service/pkg/database"
	"rentcar-service/pkg/jwtutil"
	"rentcar-service/pkg/logger"
	"rentcar-service/prometheus"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting rentcar-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Seed baseline catalogs when requested
	if appConfig.Seed.Enabled {
		if err := database.Seed(); err != nil {
			log.Fatal("Failed to seed database", zap.Error(err))
		}
		log.Info("Catalog seed completed")
	}

	// Rental lifecycle service with its repository
	rentaService := renta.NewService(renta.NewGormRepo(database.GetDB()), log)
	rentaHandler := handler.NewRentaHandler(rentaService)
	reporteHandler := handler.NewReporteHandler(rentaService)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Landing, health and metrics endpoints
	e.GET("/", handler.Landing)
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API routes; token validation only runs when the identity provider is wired
	api := e.Group("/api")
	if appConfig.Auth.Enabled {
		api.Use(mid.AuthMiddleware)
		log.Info("Bearer token validation enabled")
	}

	clienteAPI := api.Group("/clientes")
	clienteAPI.GET("", handler.ListClientes)
	clienteAPI.GET("/:id", handler.GetCliente)
	clienteAPI.POST("", handler.CreateCliente)
	clienteAPI.PUT("/:id", handler.UpdateCliente)
	clienteAPI.DELETE("/:id", handler.DeleteCliente)

	empleadoAPI := api.Group("/empleados")
	empleadoAPI.GET("", handler.ListEmpleados)
	empleadoAPI.GET("/:id", handler.GetEmpleado)
	empleadoAPI.POST("", handler.CreateEmpleado)
	empleadoAPI.PUT("/:id", handler.UpdateEmpleado)
	empleadoAPI.DELETE("/:id", handler.DeleteEmpleado)

	marcaAPI := api.Group("/marcas")
	marcaAPI.GET("", handler.ListMarcas)
	marcaAPI.GET("/:id", handler.GetMarca)
	marcaAPI.POST("", handler.CreateMarca)
	marcaAPI.PUT("/:id", handler.UpdateMarca)
	marcaAPI.DELETE("/:id", handler.DeleteMarca)

	modeloAPI := api.Group("/modelos")
	modeloAPI.GET("", handler.ListModelos)
	modeloAPI.GET("/:id", handler.GetModelo)
	modeloAPI.POST("", handler.CreateModelo)
	modeloAPI.PUT("/:id", handler.UpdateModelo)
	modeloAPI.DELETE("/:id", handler.DeleteModelo)

	tipoVehiculoAPI := api.Group("/tipos-vehiculos")
	tipoVehiculoAPI.GET("", handler.ListTiposVehiculos)
	tipoVehiculoAPI.GET("/:id", handler.GetTipoVehiculo)
	tipoVehiculoAPI.POST("", handler.CreateTipoVehiculo)
	tipoVehiculoAPI.PUT("/:id", handler.UpdateTipoVehiculo)
	tipoVehiculoAPI.DELETE("/:id", handler.DeleteTipoVehiculo)

	tipoCombustibleAPI := api.Group("/tipos-combustible")
	tipoCombustibleAPI.GET("", handler.ListTiposCombustible)
	tipoCombustibleAPI.GET("/:id", handler.GetTipoCombustible)
	tipoCombustibleAPI.POST("", handler.CreateTipoCombustible)
	tipoCombustibleAPI.PUT("/:id", handler.UpdateTipoCombustible)
	tipoCombustibleAPI.DELETE("/:id", handler.DeleteTipoCombustible)

	vehiculoAPI := api.Group("/vehiculos")
	vehiculoAPI.GET("", handler.ListVehiculos)
	vehiculoAPI.GET("/:id", handler.GetVehiculo)
	vehiculoAPI.POST("", handler.CreateVehiculo)
	vehiculoAPI.PUT("/:id", handler.UpdateVehiculo)
	vehiculoAPI.DELETE("/:id", handler.DeleteVehiculo)

	inspeccionAPI := api.Group("/inspecciones")
	inspeccionAPI.GET("", handler.ListInspecciones)
	inspeccionAPI.GET("/:id", handler.GetInspeccion)
	inspeccionAPI.POST("", handler.CreateInspeccion)
	inspeccionAPI.PUT("/:id", handler.UpdateInspeccion)
	inspeccionAPI.DELETE("/:id", handler.DeleteInspeccion)

	rentaAPI := api.Group("/rentas")
	rentaAPI.GET("", rentaHandler.List)
	rentaAPI.GET("/:id", rentaHandler.Get)
	rentaAPI.POST("", rentaHandler.Create)
	rentaAPI.PUT("/:id", rentaHandler.Update)
	rentaAPI.POST("/:id/devolucion", rentaHandler.ProcessReturn)
	rentaAPI.DELETE("/:id", rentaHandler.Delete)

	reporteAPI := api.Group("/reportes")
	reporteAPI.GET("", reporteHandler.Get)
	reporteAPI.GET("/pdf", reporteHandler.GetPDF)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
