package httpserver

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "autoexport-srv/internal/auth/delivery/http"
	dashboardHTTP "autoexport-srv/internal/dashboard/delivery/http"
	documentHTTP "autoexport-srv/internal/document/delivery/http"
	inquiryHTTP "autoexport-srv/internal/inquiry/delivery/http"
	jobHTTP "autoexport-srv/internal/job/delivery/http"
	"autoexport-srv/internal/middleware"
	uploadHTTP "autoexport-srv/internal/upload/delivery/http"
	vehicleHTTP "autoexport-srv/internal/vehicle/delivery/http"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	mw := middleware.New(srv.logger, srv.codec)
	srv.gin.Use(mw.Locale())
	srv.gin.Use(mw.AdminSession())

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := srv.gin.Group(Api)

	authHTTP.New(srv.authUC, srv.logger, srv.secureCookies).RegisterRoutes(api)
	vehicleHTTP.New(srv.vehicleUC, srv.logger).RegisterRoutes(api, mw)
	documentHTTP.New(srv.documentUC, srv.logger).RegisterRoutes(api, mw)
	jobHTTP.New(srv.jobUC, srv.logger).RegisterRoutes(api, mw)
	inquiryHTTP.New(srv.inquiryUC, srv.logger).RegisterRoutes(api, mw)
	dashboardHTTP.New(srv.dashboardUC, srv.logger).RegisterRoutes(api, mw)
	uploadHTTP.New(srv.uploadUC, srv.logger).RegisterRoutes(api, mw)

	return nil
}
