package controller

import (
	"rag-demo-be/internal/dto"
	"rag-demo-be/internal/pkg/serverutils"
	"rag-demo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRagController interface {
	RegisterRoutes(r fiber.Router)
	IndexDocuments(ctx *fiber.Ctx) error
	IndexDocumentsAsync(ctx *fiber.Ctx) error
	Query(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
}

type ragController struct {
	indexingService  service.IIndexingService
	queryService     service.IQueryService
	publisherService service.IPublisherService
}

func NewRagController(
	indexingService service.IIndexingService,
	queryService service.IQueryService,
	publisherService service.IPublisherService,
) IRagController {
	return &ragController{
		indexingService:  indexingService,
		queryService:     queryService,
		publisherService: publisherService,
	}
}

func (c *ragController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/rag/v1")
	h.Post("index", c.IndexDocuments)
	h.Post("index/async", c.IndexDocumentsAsync)
	h.Post("query", c.Query)
	h.Get("runs", c.ListRuns)
}

// IndexDocuments runs a full synchronous indexing pass. The response shape
// (counts + itemized failures) is returned unwrapped.
func (c *ragController) IndexDocuments(ctx *fiber.Ctx) error {
	res, err := c.indexingService.IndexCorpus(ctx.Context(), "http")
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *ragController) IndexDocumentsAsync(ctx *fiber.Ctx) error {
	requestId, err := c.publisherService.PublishIndexRequest(ctx.Context(), ctx.IP())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(dto.AsyncIndexResponse{
		RequestId: requestId,
		Status:    "accepted",
	})
}

// Query returns the wire-contract response unwrapped: its field names
// (including "@search.score") are fixed for interoperability.
func (c *ragController) Query(ctx *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.queryService.Query(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *ragController) ListRuns(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)

	runs, err := c.indexingService.ListRuns(ctx.Context(), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Recent indexing runs", runs))
}
