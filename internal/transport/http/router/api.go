package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"storefront-api/internal/core/auth"
	"storefront-api/internal/domain"
	"storefront-api/internal/transport/http/handler"
	mdw "storefront-api/internal/transport/http/middleware"
)

type Deps struct {
	Log     *zap.Logger
	JWTer   *auth.JWTer
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Cart    *handler.CartHandler

	SessionCookie string
	SessionTTL    time.Duration
}

func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	// 健康检查 / 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 认证
	r.POST("/register", d.Auth.Register)
	r.POST("/login", d.Auth.Login)

	// 商品目录
	r.GET("/products", d.Catalog.List)

	// 商品管理（仅 admin）
	adminProducts := r.Group("/products")
	adminProducts.Use(mdw.AuthJWT(d.JWTer, domain.RoleAdmin))
	adminProducts.POST("", d.Catalog.Create)
	adminProducts.PUT("/:id", d.Catalog.Update)
	adminProducts.DELETE("/:id", d.Catalog.Delete)

	// 购物车（会话级）
	sess := r.Group("")
	sess.Use(mdw.Session(d.SessionCookie, int(d.SessionTTL.Seconds())))
	sess.POST("/cart/add", d.Cart.Add)
	sess.GET("/cart/view", d.Cart.View)
	sess.PUT("/cart/update", d.Cart.Update)
	sess.DELETE("/cart/remove", d.Cart.Remove)
	sess.POST("/checkout", d.Cart.Checkout)

	return r
}
