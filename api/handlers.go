package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kesterallen/wordle-engine/services"
)

// maxRequestBodySize caps filter/solve request bodies; constraint token
// lists are tiny, so anything larger is garbage.
const maxRequestBodySize = 1 << 20 // 1 MB

// API holds dependencies for API handlers, primarily the candidate engine.
type API struct {
	engine services.CandidateEngine
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.CandidateEngine) *API {
	return &API{engine: engine}
}

// SetupRoutes defines all the API routes for the narrowing engine.
func SetupRoutes(router *gin.Engine, engine services.CandidateEngine) {
	apiHandler := NewAPI(engine)

	router.Use(RequestIDMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))
	router.Use(CORSMiddleware())

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	router.GET("/words", apiHandler.WordCountHandler)

	router.POST("/filter", apiHandler.FilterHandler)

	solveRoutes := router.Group("/solve")
	{
		solveRoutes.POST("", apiHandler.SolveHandler)        // Solve one known target
		solveRoutes.POST("/all", apiHandler.SolveAllHandler) // Solve every candidate as a target
	}
}

// HealthCheckHandler reports liveness and the size of the loaded corpus.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"words":  api.engine.WordCount(),
	})
}

// WordCountHandler returns the size of the scored candidate collection.
func (api *API) WordCountHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": api.engine.WordCount()})
}

// FilterRequest carries the raw constraint tokens for a filtering run.
type FilterRequest struct {
	Constraints []string `json:"constraints"`
}

// FilterHandler applies constraint tokens to the scored collection.
// Request Body: FilterRequest
func (api *API) FilterHandler(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	result, err := api.engine.Filter(req.Constraints)
	if err != nil {
		SendEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SolveRequest names the target word to solve for.
type SolveRequest struct {
	Target string `json:"target"`
}

// SolveHandler plays the elimination loop against one target. An
// exhausted run is a normal 200 outcome with found=false.
func (api *API) SolveHandler(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if req.Target == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Target word is required")
		return
	}

	result, err := api.engine.Solve(req.Target)
	if err != nil {
		SendEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SolveAllHandler solves every candidate as a target and returns the
// aggregated batch outcome.
func (api *API) SolveAllHandler(c *gin.Context) {
	batch, err := api.engine.SolveAll(c.Request.Context())
	if err != nil {
		SendEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, batch)
}
