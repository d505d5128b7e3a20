package router

import (
	"time"

	"iego3d/internal/config"
	"iego3d/internal/handler"
	"iego3d/internal/infra"
	"iego3d/internal/middleware"
	"iego3d/internal/repository"
	"iego3d/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Infrastructure ───────────────────────────────────────────────────────
	recibos := infra.NewReceiptRenderer(cfg.PDFStoragePath, cfg.LogoPath)
	clock := service.Clock(time.Now)

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	revendedorRepo := repository.NewRevendedorRepository(db)
	entregaRepo := repository.NewEntregaRepository(db)
	pagoRepo := repository.NewPagoRepository(db)
	gastoRepo := repository.NewGastoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productoSvc := service.NewProductoService(productoRepo)
	revendedorSvc := service.NewRevendedorService(revendedorRepo, entregaRepo, pagoRepo)
	entregaSvc := service.NewEntregaService(entregaRepo, productoRepo, recibos)
	pagoSvc := service.NewPagoService(pagoRepo, clock)
	gastoSvc := service.NewGastoService(gastoRepo)
	cuentasSvc := service.NewCuentasService(pagoRepo, gastoRepo, revendedorRepo, clock)
	dashboardSvc := service.NewDashboardService(pagoRepo, gastoRepo, entregaRepo, clock)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productosH := handler.NewProductosHandler(productoSvc)
	revendedoresH := handler.NewRevendedoresHandler(revendedorSvc)
	entregasH := handler.NewEntregasHandler(entregaSvc)
	pagosH := handler.NewPagosHandler(pagoSvc)
	gastosH := handler.NewGastosHandler(gastoSvc)
	cuentasH := handler.NewCuentasHandler(cuentasSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))
	r.GET("/", dashboardH.Resumen)
	r.GET("/cuentas", cuentasH.Vista)
	r.POST("/cuentas", cuentasH.Registrar)
	r.GET("/entregas/:id/pdf", middleware.RateLimiter(30, time.Minute), entregasH.DescargarPDF)

	api := r.Group("/api")
	{
		api.GET("/dashboard", dashboardH.Resumen)

		prods := api.Group("/productos")
		{
			prods.GET("", productosH.Listar)
			prods.POST("", productosH.Crear)
			prods.GET("/:id", productosH.ObtenerPorID)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Desactivar)
		}

		revs := api.Group("/revendedores")
		{
			revs.GET("", revendedoresH.Listar)
			revs.POST("", revendedoresH.Crear)
			revs.POST("/borrar", revendedoresH.Borrar)
			revs.PUT("/:id", revendedoresH.Actualizar)
			revs.DELETE("/:id", revendedoresH.Desactivar)
			revs.GET("/:id/movimientos", revendedoresH.Movimientos)
		}

		ents := api.Group("/entregas")
		{
			ents.GET("", entregasH.Listar)
			ents.POST("", entregasH.Crear)
			ents.POST("/borrar", entregasH.Borrar)
			ents.GET("/:id", entregasH.ObtenerDetalle)
		}

		pagos := api.Group("/pagos")
		{
			pagos.POST("/borrar", pagosH.BorrarVarios)
			pagos.GET("/:id", pagosH.ObtenerPorID)
			pagos.PUT("/:id", pagosH.Actualizar)
		}

		api.POST("/gastos/borrar", gastosH.Borrar)
	}

	return r
}
