package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trilhaup/trilha/internal/diagnostic"
	"github.com/trilhaup/trilha/internal/trail"
)

// dateLayout is the backend's completion-date format.
const dateLayout = "2006-01-02"

// Config holds backend client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Retry   RetryConfig
}

// DefaultConfig returns a Config with sensible defaults. BaseURL has no
// default; it always comes from configuration.
func DefaultConfig() Config {
	return Config{
		Timeout: 15 * time.Second,
		Retry:   DefaultRetryConfig(),
	}
}

// Client is the JSON/HTTP client of the learning-platform backend. It
// implements trail.Backend and diagnostic.Backend.
//
// Reads are retried on transient failures; writes go out exactly once per
// call. Once a write is issued the server-side effect may exist even if
// the caller stops waiting, so callers must re-read instead of caching
// state across a failed or abandoned write.
type Client struct {
	base   string
	http   *http.Client
	retry  RetryConfig
	logger *zap.Logger
}

// New creates a backend client.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("URL do backend não configurada")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultConfig().Timeout
	}
	retry := cfg.Retry
	if retry.MaxAttempts == 0 {
		retry = DefaultRetryConfig()
	}
	return &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		http:   &http.Client{Timeout: timeout},
		retry:  retry,
		logger: logger,
	}, nil
}

// Wire DTOs. The backend speaks the platform's Portuguese field names;
// they are mapped to the domain types here and nowhere else.

type trailDTO struct {
	ID       int    `json:"id"`
	Nome     string `json:"nome"`
	QtdFases int    `json:"qtdFases"`
}

type courseDTO struct {
	ID           int    `json:"id"`
	TrilhaID     int    `json:"trilhaId"`
	CursoID      int    `json:"cursoId"`
	Ordem        int    `json:"ordem"`
	Titulo       string `json:"titulo"`
	Link         string `json:"link"`
	Nivel        string `json:"nivel"`
	CargaHoraria int    `json:"cargaHoraria"`
}

type overlayDTO struct {
	UsuarioID     int     `json:"usuarioId"`
	TrilhaCursoID int     `json:"trilhaCursoId"`
	Status        string  `json:"status"`
	DataConclusao *string `json:"dataConclusao"`
}

type diagnosticDTO struct {
	UsuarioID              int    `json:"usuarioId"`
	TrilhaID               int    `json:"trilhaId"`
	ResultadoAdministracao int    `json:"resultadoAdministracao"`
	ResultadoTecnologia    int    `json:"resultadoTecnologia"`
	ResultadoRh            int    `json:"resultadoRh"`
	CriadoEm               string `json:"criadoEm"`
}

type linkDTO struct {
	TrilhaID int `json:"trilhaId"`
}

// ListTrails fetches every trail known to the system.
func (c *Client) ListTrails(ctx context.Context) ([]trail.Trail, error) {
	var dtos []trailDTO
	if err := c.getJSON(ctx, "/trilhas", &dtos); err != nil {
		return nil, err
	}
	trails := make([]trail.Trail, 0, len(dtos))
	for _, d := range dtos {
		trails = append(trails, trail.Trail{ID: d.ID, Name: d.Nome, PhaseCount: d.QtdFases})
	}
	return trails, nil
}

// ListTrailCourses fetches the ordered course template of one trail.
func (c *Client) ListTrailCourses(ctx context.Context, trailID int) ([]trail.Course, error) {
	var dtos []courseDTO
	if err := c.getJSON(ctx, "/trilhas/"+strconv.Itoa(trailID)+"/cursos", &dtos); err != nil {
		return nil, err
	}
	courses := make([]trail.Course, 0, len(dtos))
	for _, d := range dtos {
		courses = append(courses, trail.Course{
			ID:              d.ID,
			TrailID:         d.TrilhaID,
			CourseID:        d.CursoID,
			Ordinal:         d.Ordem,
			Title:           d.Titulo,
			Link:            d.Link,
			Level:           d.Nivel,
			DurationMinutes: d.CargaHoraria,
		})
	}
	return courses, nil
}

// ListUserOverlays fetches a user's per-course progress rows. Statuses are
// normalized into the closed enum here, at the boundary.
func (c *Client) ListUserOverlays(ctx context.Context, userID int) ([]trail.Overlay, error) {
	var dtos []overlayDTO
	if err := c.getJSON(ctx, "/usuarios/"+strconv.Itoa(userID)+"/status", &dtos); err != nil {
		return nil, err
	}
	overlays := make([]trail.Overlay, 0, len(dtos))
	for _, d := range dtos {
		ov := trail.Overlay{
			UserID:        d.UsuarioID,
			TrailCourseID: d.TrilhaCursoID,
			Status:        trail.ParseStatus(d.Status),
		}
		if d.DataConclusao != nil && *d.DataConclusao != "" {
			if t, err := time.Parse(dateLayout, *d.DataConclusao); err == nil {
				ov.CompletedAt = &t
			}
		}
		overlays = append(overlays, ov)
	}
	return overlays, nil
}

// SaveOverlay creates or updates one progress row (upsert keyed by user
// and trail-course).
func (c *Client) SaveOverlay(ctx context.Context, ov trail.Overlay) error {
	dto := overlayDTO{
		UsuarioID:     ov.UserID,
		TrilhaCursoID: ov.TrailCourseID,
		Status:        ov.Status.Wire(),
	}
	if ov.CompletedAt != nil {
		s := ov.CompletedAt.Format(dateLayout)
		dto.DataConclusao = &s
	}
	path := "/usuarios/" + strconv.Itoa(ov.UserID) + "/status/" + strconv.Itoa(ov.TrailCourseID)
	return c.writeJSON(ctx, http.MethodPut, path, dto)
}

// ListUserTrails fetches the trails linked to a user's profile.
func (c *Client) ListUserTrails(ctx context.Context, userID int) ([]trail.Trail, error) {
	var dtos []trailDTO
	if err := c.getJSON(ctx, "/usuarios/"+strconv.Itoa(userID)+"/trilhas", &dtos); err != nil {
		return nil, err
	}
	trails := make([]trail.Trail, 0, len(dtos))
	for _, d := range dtos {
		trails = append(trails, trail.Trail{ID: d.ID, Name: d.Nome, PhaseCount: d.QtdFases})
	}
	return trails, nil
}

// CreateDiagnostic persists one diagnostic record.
func (c *Client) CreateDiagnostic(ctx context.Context, rec diagnostic.Record) error {
	dto := diagnosticDTO{
		UsuarioID:              rec.UserID,
		TrilhaID:               rec.TrailID,
		ResultadoAdministracao: rec.Tally.Administracao,
		ResultadoTecnologia:    rec.Tally.Tecnologia,
		ResultadoRh:            rec.Tally.RH,
		CriadoEm:               rec.CreatedAt.UTC().Format(time.RFC3339),
	}
	return c.writeJSON(ctx, http.MethodPost, "/diagnosticos", dto)
}

// LinkTrail associates a trail with a user's profile.
func (c *Client) LinkTrail(ctx context.Context, userID, trailID int) error {
	path := "/usuarios/" + strconv.Itoa(userID) + "/trilhas"
	return c.writeJSON(ctx, http.MethodPut, path, linkDTO{TrilhaID: trailID})
}

// getJSON issues a GET with retries on transient failures.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	var lastErr error
	for attempt := range c.retry.MaxAttempts {
		err := c.do(ctx, http.MethodGet, path, nil, out)
		if err == nil {
			return nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return err
		}
		if attempt == c.retry.MaxAttempts-1 {
			break
		}

		wait := c.retry.backoff(attempt, err)
		c.logger.Debug("nova tentativa de leitura",
			zap.String("path", path),
			zap.Int("tentativa", attempt+1),
			zap.Duration("espera", wait),
			zap.Error(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return lastErr
}

// writeJSON issues a write exactly once. No retry: a write whose response
// was lost may still have been applied server-side.
func (c *Client) writeJSON(ctx context.Context, method, path string, body any) error {
	return c.do(ctx, method, path, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("montar requisição %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Code:       resp.StatusCode,
			Message:    extractMessage(raw),
			RetryAfter: retryAfter(resp),
		}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("resposta inválida de %s %s: %w", method, path, err)
		}
	}
	return nil
}

// retryAfter parses a Retry-After header given in seconds.
func retryAfter(resp *http.Response) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
