package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"care-assessment/backend/internal/ai"
	"care-assessment/backend/internal/assessment"
	"care-assessment/backend/internal/scoring"
	"care-assessment/backend/internal/util"
)

// RootMessage is the liveness text served on GET /.
const RootMessage = "Server is running! (AI Studio Connection)"

var errMissingKey = errors.New("API Key not found")

// Config defines server dependencies.
type Config struct {
	Variant        assessment.Variant
	AllowedOrigins []string
}

// Server wires HTTP handlers with the prompt variant and the backend.
type Server struct {
	generator      ai.Generator
	variant        assessment.Variant
	allowedOrigins []string
	validate       *validator.Validate
	upgrader       websocket.Upgrader
}

// NewServer constructs the API server. A nil or disabled generator is
// accepted: the server still starts and assessments fail with a
// structured error.
func NewServer(cfg Config, generator ai.Generator) (*Server, error) {
	if cfg.Variant.Render == nil {
		return nil, errors.New("variant template required")
	}
	if strings.TrimSpace(cfg.Variant.Model) == "" {
		return nil, fmt.Errorf("variant %q: model required", cfg.Variant.Name)
	}
	s := &Server{
		generator:      generator,
		variant:        cfg.Variant,
		allowedOrigins: cfg.AllowedOrigins,
		validate:       validator.New(),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	return s, nil
}

// Router configures gin routes.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.New()
	r.Use(requestID(), accessLog(), gin.CustomRecovery(s.recoverPanic))

	corsCfg := cors.DefaultConfig()
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", requestIDHeader}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.ExposeHeaders = []string{requestIDHeader}
	r.Use(cors.New(corsCfg))

	r.GET("/", s.handleRoot)

	api := r.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)
		api.POST("/assess", s.handleAssess)
		api.GET("/assess/stream", s.handleAssessStream)
		api.GET("/questions", s.handleQuestions)
		api.POST("/score", s.handleScore)
		api.GET("/services", s.handleServices)
		api.POST("/services/quote", s.handleQuote)
	}

	return r, nil
}

func (s *Server) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, RootMessage)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"ai_enabled": s.aiEnabled(),
		"variant":    s.variant.Name,
		"model":      s.variant.Model,
	})
}

func (s *Server) handleAssess(c *gin.Context) {
	timer := util.StartTimer()
	log := requestLogger(c).WithFields(logrus.Fields{
		"variant": s.variant.Name,
		"model":   s.variant.Model,
	})

	if !s.aiEnabled() {
		log.Warn("assessment rejected: backend credential missing")
		s.renderFailure(c, errMissingKey)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		log.WithError(err).Warn("read assessment body")
		s.renderFailure(c, fmt.Errorf("read request body: %w", err))
		return
	}
	input, err := assessment.ParseInput(body)
	if err != nil {
		log.WithError(err).Warn("decode assessment body")
		s.renderFailure(c, err)
		return
	}

	req := s.buildRequest(input)
	timer.Lap("render")
	log = log.WithField("prompt_chars", len([]rune(req.Prompt)))
	log.WithField("prompt", req.Prompt).Debug("rendered assessment prompt")

	advice, err := s.generator.Generate(c.Request.Context(), req)
	timer.Lap("backend")
	if err != nil {
		log.WithFields(timer.Fields()).WithError(err).Error("assessment backend call failed")
		s.renderFailure(c, err)
		return
	}

	log.WithFields(timer.Fields()).Info("assessment completed")
	c.JSON(http.StatusOK, adviceOK(advice))
}

func (s *Server) handleQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, QuestionsResponse{
		Aspects:   scoring.AspectNames[:],
		Questions: scoring.Questions,
	})
}

func (s *Server) handleScore(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, fmt.Errorf("decode score request: %w", err))
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	result, err := scoring.Calculate(req.Answers, req.Age)
	if err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	c.JSON(http.StatusOK, ScoreResponse{
		Success:           true,
		TotalScore:        result.TotalScore,
		TrafficLight:      result.TrafficLight,
		ScoresByAspect:    result.ScoresByAspect(),
		Aspects:           result.Aspects,
		HighestRiskAspect: result.HighestRiskAspect,
		RedFlagItems:      result.RedFlagItems,
		CrisisStatus:      scoring.CrisisStatus(req.CrisisAnswers),
		OtherStatus:       strings.TrimSpace(req.OtherStatus),
	})
}

func (s *Server) handleServices(c *gin.Context) {
	var query ServicesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.renderError(c, http.StatusBadRequest, fmt.Errorf("decode services query: %w", err))
		return
	}
	if err := s.validate.Struct(query); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	services := scoring.Services
	if query.Aspect != nil {
		services = scoring.ServicesFor(*query.Aspect)
	}
	c.JSON(http.StatusOK, ServicesResponse{Services: services})
}

func (s *Server) handleQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, fmt.Errorf("decode quote request: %w", err))
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	items := lo.Map(req.Items, func(item QuoteItemRequest, _ int) scoring.QuoteItem {
		return scoring.QuoteItem{
			ServiceID:   strings.TrimSpace(item.ServiceID),
			DailyFreq:   item.DailyFreq,
			MonthlyDays: item.MonthlyDays,
		}
	})
	quote, err := scoring.Quote(items)
	if err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}
	requestLogger(c).WithFields(logrus.Fields{
		"items":   len(quote.Lines),
		"monthly": quote.Monthly,
	}).Debug("services quoted")
	c.JSON(http.StatusOK, QuoteResponse{Success: true, Lines: quote.Lines, Monthly: quote.Monthly})
}

func (s *Server) aiEnabled() bool {
	return s.generator != nil && s.generator.Enabled()
}

func (s *Server) buildRequest(input assessment.Input) ai.Request {
	return ai.Request{
		Model:             s.variant.Model,
		SystemInstruction: s.variant.SystemInstruction,
		Prompt:            s.variant.Render(input),
	}
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.allowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// renderFailure reports an assessment failure. Both failure classes share
// status 500.
func (s *Server) renderFailure(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, assessmentFailure(err))
}

func assessmentFailure(err error) AdviceResult {
	if errors.Is(err, ai.ErrDisabled) {
		err = errMissingKey
	}
	return adviceFailed(err)
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	c.JSON(status, adviceFailed(err))
}

func (s *Server) recoverPanic(c *gin.Context, recovered any) {
	requestLogger(c).WithField("panic", recovered).Error("handler panicked")
	c.AbortWithStatusJSON(http.StatusInternalServerError, adviceFailed(fmt.Errorf("internal error: %v", recovered)))
}
