// Package httpapi serves the calculator over HTTP with gin.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kaptinlin/jsonrepair"

	"github.com/zephyrtronium/calculator"
)

// Options configures the router.
type Options struct {
	// APIKeys, if non-empty, restricts the /v1 routes to requests carrying one
	// of the keys in an Api-Key header.
	APIKeys []string
	// AllowOrigins lists CORS origins. Empty or containing "*" allows all.
	AllowOrigins []string
	// LenientJSON repairs request bodies that are not valid JSON before
	// giving up on them.
	LenientJSON bool
	// Logger receives request logs. Nil means slog.Default().
	Logger *slog.Logger
}

// maxBody is the largest request body accepted, in bytes.
const maxBody = 1 << 16

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	lenient bool
	apiKeys []string
	logger  *slog.Logger
}

func NewHTTPHandler(opts Options) *HttpEndpoints {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &HttpEndpoints{
		lenient: opts.LenientJSON,
		apiKeys: opts.APIKeys,
		logger:  logger,
	}
}

// NewRouter creates a gin engine with every calculator route.
func NewRouter(opts Options) *gin.Engine {
	h := NewHTTPHandler(opts)
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(h.logger))
	router.Use(cors.New(corsConfig(opts.AllowOrigins)))

	router.GET("/", HealthCheckHandle)
	v1 := router.Group("/v1")
	h.AddRoutes(v1)
	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Api-Key", "Content-Type", "Content-Length", RequestIDHeader},
		ExposeHeaders: []string{"Content-Type", "Content-Length", RequestIDHeader},
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}

func (h *HttpEndpoints) AddRoutes(rg *gin.RouterGroup) {
	if len(h.apiKeys) > 0 {
		rg.Use(HasValidAPIKey(h.logger, h.apiKeys))
	}
	rg.GET("/operations", h.listOperations)
	rg.POST("/calculate", RequirePayload(h.logger), h.calculate)
	rg.POST("/evaluate", RequirePayload(h.logger), h.evaluate)
}

type OperationInfo struct {
	Symbol string `json:"symbol"`
	Arity  int    `json:"arity"`
}

type CalculateReq struct {
	Operation string `json:"operation"`
	// A and B are pointers so that an absent operand is distinguishable
	// from zero.
	A *float64 `json:"a"`
	B *float64 `json:"b"`
}

func (r *CalculateReq) operands() []float64 {
	var v []float64
	if r.A != nil {
		v = append(v, *r.A)
		if r.B != nil {
			v = append(v, *r.B)
		}
	}
	return v
}

type EvaluateReq struct {
	Expression string `json:"expression"`
}

// ResultResp is the response to a successful calculation. Result is null
// when the value is not finite, in which case Text holds it.
type ResultResp struct {
	Result *float64 `json:"result"`
	Text   string   `json:"text,omitempty"`
}

type ErrorResp struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func (h *HttpEndpoints) listOperations(c *gin.Context) {
	ops := calculator.Ops()
	r := make([]OperationInfo, len(ops))
	for i, op := range ops {
		r[i] = OperationInfo{Symbol: op.String(), Arity: op.Arity()}
	}
	c.JSON(http.StatusOK, gin.H{"operations": r})
}

func (h *HttpEndpoints) calculate(c *gin.Context) {
	var req CalculateReq
	if !h.bind(c, &req) {
		return
	}
	r, err := calculator.Calculate(req.Operation, req.operands()...)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondResult(c, r)
}

func (h *HttpEndpoints) evaluate(c *gin.Context) {
	var req EvaluateReq
	if !h.bind(c, &req) {
		return
	}
	r, err := calculator.EvaluateExpression(req.Expression)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondResult(c, r)
}

// bind decodes the request body into v. If it fails, it writes the error
// response and returns false.
func (h *HttpEndpoints) bind(c *gin.Context, v any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBody)
	body, err := c.GetRawData()
	if err != nil {
		h.logger.Debug("reading request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResp{Error: "invalid request body"})
		return false
	}
	err = json.Unmarshal(body, v)
	if err != nil && h.lenient {
		repaired, rerr := jsonrepair.JSONRepair(string(body))
		if rerr == nil {
			h.logger.Debug("repaired request body", slog.String("body", repaired))
			err = json.Unmarshal([]byte(repaired), v)
		}
	}
	if err != nil {
		h.logger.Debug("decoding request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResp{Error: "invalid request body"})
		return false
	}
	return true
}

func respondResult(c *gin.Context, r float64) {
	if math.IsInf(r, 0) || math.IsNaN(r) {
		c.JSON(http.StatusOK, ResultResp{Text: strconv.FormatFloat(r, 'g', -1, 64)})
		return
	}
	c.JSON(http.StatusOK, ResultResp{Result: &r})
}

func (h *HttpEndpoints) respondError(c *gin.Context, err error) {
	var e *calculator.Error
	if !errors.As(err, &e) {
		h.logger.Error("unexpected calculator error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResp{Error: "internal error"})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResp{Error: e.Msg, Kind: e.Kind.String()})
}
