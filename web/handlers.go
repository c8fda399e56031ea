package web

import (
	"context"

	"github.com/oarkflow/frame"
	"github.com/oarkflow/frame/middlewares/server/cors"
	"github.com/oarkflow/frame/middlewares/server/monitor"
	"github.com/oarkflow/frame/pkg/common/utils"
	"github.com/oarkflow/frame/pkg/protocol/consts"
	"github.com/oarkflow/frame/pkg/route"
	"github.com/oarkflow/frame/server"

	"github.com/oarkflow/stem"
	"github.com/oarkflow/stem/tokenizer"
	"github.com/oarkflow/stem/verify"
)

const defaultEngineKey = "default"

type StemController struct{}

func NewStemController() *StemController {
	return &StemController{}
}

var controller = NewStemController()

func engineFor(key string) (*stem.Engine, error) {
	if key == "" {
		key = defaultEngineKey
	}
	return stem.GetEngine(key)
}

func (s *StemController) NewEngine(_ context.Context, ctx *frame.Context) {
	var req Options
	err := ctx.Bind(&req)
	if err != nil {
		Abort(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if req.Key == "" {
		Failed(ctx, consts.StatusBadRequest, "Key not provided", nil)
		return
	}
	cfg := stem.GetConfig(req.Key)
	cfg.CacheSize = req.CacheSize
	cfg.DisableCache = req.DisableCache
	_, err = stem.GetOrSetEngine(req.Key, cfg)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, utils.H{"key": req.Key}, "New stemming engine added")
}

// Stem handles both GET and POST. The q parameter carries one or more
// whitespace-separated words; the response is their stems joined by
// single spaces. An empty q yields an empty stem string.
func (s *StemController) Stem(_ context.Context, ctx *frame.Context) {
	var query Query
	err := ctx.Bind(&query)
	if err != nil {
		Abort(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if query.Language != "" && !tokenizer.IsSupportedLanguage(tokenizer.Language(query.Language)) {
		Failed(ctx, consts.StatusBadRequest, tokenizer.LanguageNotSupported.Error(), nil)
		return
	}
	engine, err := engineFor(query.Key)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	stemmed, err := engine.StemText(query.Query)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, utils.H{"query": query.Query, "stems": stemmed})
}

func (s *StemController) StemBatch(_ context.Context, ctx *frame.Context) {
	var req BatchRequest
	err := ctx.Bind(&req)
	if err != nil {
		Abort(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	engine, err := engineFor(req.Key)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	stems := engine.StemBatch(req.Words, req.Workers)
	Success(ctx, consts.StatusOK, utils.H{"count": len(stems), "stems": stems})
}

// Verify runs the word-list/expected-list comparison. A non-zero mismatch
// count is still a success response; only unreadable or misaligned input
// fails.
func (s *StemController) Verify(_ context.Context, ctx *frame.Context) {
	var req VerifyRequest
	err := ctx.Bind(&req)
	if err != nil {
		Abort(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if req.WordsFile == "" || req.ExpectedFile == "" {
		Failed(ctx, consts.StatusBadRequest, "words_file and expected_file are required", nil)
		return
	}
	engine, err := engineFor(req.Key)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	report, err := verify.Run(req.WordsFile, req.ExpectedFile, verify.Options{Engine: engine, Workers: req.Workers})
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, report)
}

func StemRoutes(route route.IRouter) route.IRouter {
	route.POST("/new", controller.NewEngine)
	route.GET("/stem", controller.Stem)
	route.POST("/stem", controller.Stem)
	route.POST("/stem/batch", controller.StemBatch)
	route.POST("/verify", controller.Verify)
	return route
}

func StartServer(addr string, routePrefix ...string) {
	prefix := "/"
	if len(routePrefix) > 0 {
		prefix = routePrefix[0]
	}
	srv := server.New(
		server.WithDisablePrintRoute(true),
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
	)
	srv.Use(cors.Default())
	srv.GET("/monitor", monitor.New())
	StemRoutes(srv.Group(prefix))
	srv.Spin()
}
