package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/auth"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
	"github.com/khoahotran/portfolio-cms/pkg/metrics"
)

// Handlers groups the API handlers. Media is optional and its routes are
// only mounted when an uploader is configured.
type Handlers struct {
	Section    *SectionHandler
	Profile    *ProfileHandler
	Skill      *SkillHandler
	Project    *ProjectHandler
	Experience *ExperienceHandler
	Auth       *AuthHandler
	Media      *MediaHandler
}

type RouterOptions struct {
	Logger       logger.Logger
	Metrics      metrics.Recorder
	Gatherer     prometheus.Gatherer
	JWTService   *auth.JWTService
	AuthEnabled  bool
	WriteLimiter *rate.Limiter
	MaxBodyBytes int64
	StaticDir    string
}

// singletonSections are served by the generic section handler. Profile has its own.
var singletonSections = []content.Section{
	content.SectionHero,
	content.SectionAbout,
	content.SectionContact,
	content.SectionSettings,
	content.SectionStats,
}

func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = logger.NewNopLogger()
	}
	rec := opts.Metrics
	if rec == nil {
		rec = metrics.Nop{}
	}

	router := gin.New()
	router.Use(RequestLogger(log, rec), ErrorMiddleware(log), Recovery(log))

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(opts.Gatherer)))
	}

	api := router.Group("/api")
	api.Use(BodyLimit(opts.MaxBodyBytes))
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.POST("/auth/login", RateLimit(opts.WriteLimiter), h.Auth.Login)

		api.GET("/all", h.Section.GetAll)
		api.GET("/feed.xml", h.Project.Feed)
		api.GET("/profile", h.Profile.GetProfile)
		for _, s := range singletonSections {
			api.GET("/"+string(s), h.Section.GetSection(s))
		}
		api.GET("/education", h.Section.GetEducation)
		api.GET("/skills", h.Skill.ListSkills)
		api.GET("/projects", h.Project.ListProjects)
		api.GET("/experience", h.Experience.ListExperience)

		write := api.Group("/")
		write.Use(AuthMiddleware(opts.JWTService, opts.AuthEnabled), RateLimit(opts.WriteLimiter))
		{
			write.PUT("/profile", h.Profile.UpdateProfile)
			for _, s := range singletonSections {
				write.PUT("/"+string(s), h.Section.UpdateSection(s))
			}
			write.PUT("/education", h.Section.ReplaceEducation)

			write.POST("/skills", h.Skill.CreateSkill)
			write.PUT("/skills/:id", h.Skill.UpdateSkill)
			write.DELETE("/skills/:id", h.Skill.DeleteSkill)

			write.POST("/projects", h.Project.CreateProject)
			write.PUT("/projects/:id", h.Project.UpdateProject)
			write.DELETE("/projects/:id", h.Project.DeleteProject)

			write.POST("/experience", h.Experience.CreateExperience)
			write.PUT("/experience/:id", h.Experience.UpdateExperience)
			write.DELETE("/experience/:id", h.Experience.DeleteExperience)

			if h.Media != nil {
				write.POST("/media", h.Media.UploadMedia)
				write.DELETE("/media", h.Media.DeleteMedia)
				write.POST("/backup", h.Media.Backup)
			}
		}
	}

	mountStatic(router, opts.StaticDir)
	return router
}

// mountStatic serves the public page and the admin dashboard when dir exists.
func mountStatic(router *gin.Engine, dir string) {
	info, err := os.Stat(dir)
	if dir == "" || err != nil || !info.IsDir() {
		router.NoRoute(notFound)
		return
	}

	router.StaticFile("/", filepath.Join(dir, "index.html"))
	router.StaticFile("/admin", filepath.Join(dir, "admin.html"))

	files := http.FileServer(http.Dir(dir))
	router.NoRoute(func(c *gin.Context) {
		if (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) &&
			!strings.HasPrefix(c.Request.URL.Path, "/api/") {
			files.ServeHTTP(c.Writer, c.Request)
			return
		}
		notFound(c)
	})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
