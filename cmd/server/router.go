package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Skufu/cardiotips/internal/advice"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	// Canonical textual form of a UUID; braced and urn: forms are regenerated.
	maxRequestIDLen = 36
)

type ChatRequest struct {
	Text   string             `json:"text"`
	Inputs map[string]float64 `json:"inputs"`
}

type ChatResponse struct {
	Reply  string        `json:"reply"`
	Inputs advice.Inputs `json:"inputs"`
}

type ReportRequest struct {
	Percent *float64           `json:"percent"`
	Risk    *string            `json:"risk"`
	Tier    *string            `json:"tier"`
	Inputs  map[string]float64 `json:"inputs"`
}

type ReplyResponse struct {
	Reply string `json:"reply"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func setupRouter(cfg *Config, db HealthChecker, staticRoot string) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		requestID(),
		limitBodySize(cfg.MaxBodyBytes),
		cors.New(cors.Config{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
			ExposeHeaders: []string{requestIDHeader},
			MaxAge:        12 * time.Hour,
		}),
	)

	// Chat front end, if one is deployed next to the binary.
	router.Static("/static", staticRoot)
	router.StaticFile("/", filepath.Join(staticRoot, "index.html"))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"db":     fmt.Sprintf("unhealthy: %v", err),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
	})

	api := router.Group("/api")
	api.GET("/greeting", func(c *gin.Context) {
		c.JSON(http.StatusOK, ReplyResponse{Reply: advice.Greeting()})
	})
	api.POST("/chat", chatHandler(cfg.MaxMessageChars))
	api.POST("/report", reportHandler)

	return router
}

func chatHandler(maxChars int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if !bindValidated(c, chatSchema, &req) {
			return
		}
		if n := utf8.RuneCountInString(req.Text); n > maxChars {
			validationFailed(c, []FieldError{{
				Field:   "text",
				Message: fmt.Sprintf("message is %d characters; the limit is %d", n, maxChars),
			}})
			return
		}

		prior := advice.NormalizeInputs(req.Inputs)
		reply := advice.HandleUserMessage(req.Text, prior)
		merged := advice.MergeInputs(prior, advice.ParseInputs(req.Text))

		requestLogger(c).Info("chat message handled",
			"chars", utf8.RuneCountInString(req.Text),
			"inputs", len(merged),
		)
		c.JSON(http.StatusOK, ChatResponse{Reply: reply, Inputs: merged})
	}
}

func reportHandler(c *gin.Context) {
	var req ReportRequest
	if !bindValidated(c, reportSchema, &req) {
		return
	}

	inputs := advice.NormalizeInputs(req.Inputs)
	var reply, mode string
	switch {
	case req.Percent != nil:
		mode = "percent"
		reply = advice.ReportForPercent(*req.Percent, inputs)
	case req.Risk != nil:
		mode = "risk"
		reply = advice.ReportForRisk(*req.Risk, inputs)
	case req.Tier != nil:
		mode = "tier"
		tier, _ := advice.ClassifyKeyword(*req.Tier)
		reply = advice.ReportForTier(tier, inputs)
	}

	requestLogger(c).Info("report generated", "mode", mode, "inputs", len(inputs))
	c.JSON(http.StatusOK, ReplyResponse{Reply: reply})
}

// bindValidated reads the body, checks it against schema and decodes it into
// dst. It writes the error response itself and returns false on failure.
func bindValidated(c *gin.Context, schema *payloadSchema, dst any) bool {
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return false
	}

	problems, err := schema.Validate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return false
	}
	if len(problems) > 0 {
		validationFailed(c, problems)
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return false
	}
	return true
}

func validationFailed(c *gin.Context, details []FieldError) {
	requestLogger(c).Warn("payload rejected", "problems", len(details))
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   "validation_failed",
		"details": details,
	})
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(c *gin.Context) *slog.Logger {
	return slog.With(requestIDKey, c.GetString(requestIDKey))
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
