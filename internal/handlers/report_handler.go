package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/dto"
	apierrors "github.com/vdhanush11/medical-billing-denial-analysis/internal/errors"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/repositories"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/services"

	"github.com/labstack/echo/v4"
)

// cacheTTL covers report reads. Reports are immutable once computed, so a
// short private cache is safe.
const cacheTTL = 5 * time.Minute

// ReportHandler serves the denial analysis computed for stored datasets
type ReportHandler struct {
	datasetService        services.DatasetServiceInterface
	recommendationService services.RecommendationServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	datasetService services.DatasetServiceInterface,
	recommendationService services.RecommendationServiceInterface,
) *ReportHandler {
	return &ReportHandler{
		datasetService:        datasetService,
		recommendationService: recommendationService,
	}
}

// GetReport returns the full denial analysis for a dataset.
//
// Method: GET /api/v1/datasets/:id/report
//
// Path parameters:
//   - id: Dataset UUID
//
// Query parameters:
//   - top_n: Rows in the per-code table (default: 10, max: 50). Also
//     restricts both heatmaps to those codes.
//
// Success Response: 200 OK
//   - totals, per-group tables, heatmap cells, root causes
//
// Error Responses:
//   - 400: DATASET_003 invalid dataset ID or VALIDATION_001 bad top_n
//   - 404: DATASET_002 dataset not found
func (h *ReportHandler) GetReport(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, apierrors.DatasetInvalidID)
	}

	var query dto.ReportQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	dataset, err := h.datasetService.GetDataset(id)
	if err != nil {
		return h.handleDatasetError(c, err)
	}

	topN := query.TopN
	if topN == 0 {
		topN = defaultTopN
	}

	setReportCacheHeader(c)

	return c.JSON(http.StatusOK, dto.ToReportResponse(dataset.Report, topN))
}

// GetSummaryTable returns one aggregate table of the report.
//
// Method: GET /api/v1/datasets/:id/summaries/:group
//
// Path parameters:
//   - id: Dataset UUID
//   - group: "codes", "payers", or "providers"
//
// Query parameters:
//   - top_n: Maximum rows to return (default: 10, max: 50)
//
// Success Response: 200 OK
//   - group name + table rows sorted by denial rate
//
// Error Responses:
//   - 400: DATASET_003 invalid dataset ID or VALIDATION_001 unknown group
//   - 404: DATASET_002 dataset not found
func (h *ReportHandler) GetSummaryTable(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, apierrors.DatasetInvalidID)
	}

	var params dto.SummaryParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid parameters"))
	}
	if err := c.Validate(&params); err != nil {
		return err
	}

	dataset, err := h.datasetService.GetDataset(id)
	if err != nil {
		return h.handleDatasetError(c, err)
	}

	topN := params.TopN
	if topN == 0 {
		topN = defaultTopN
	}

	setReportCacheHeader(c)

	return c.JSON(http.StatusOK, dto.ToSummaryTable(dataset.Report, params.Group, topN))
}

// GetRootCauses returns the root-cause classification summary.
//
// Method: GET /api/v1/datasets/:id/root-causes
//
// Path parameters:
//   - id: Dataset UUID
//
// Success Response: 200 OK
//   - rootCauses: per-category counts, shares, lost revenue, examples
//
// Error Responses:
//   - 400: DATASET_003 invalid dataset ID
//   - 404: DATASET_002 dataset not found
func (h *ReportHandler) GetRootCauses(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, apierrors.DatasetInvalidID)
	}

	dataset, err := h.datasetService.GetDataset(id)
	if err != nil {
		return h.handleDatasetError(c, err)
	}

	setReportCacheHeader(c)

	return c.JSON(http.StatusOK, dto.RootCausesResponse{
		RootCauses:  dto.ToRootCauseResponses(dataset.Report.RootCauses),
		GeneratedAt: dataset.Report.GeneratedAt,
	})
}

// GetRecommendations returns remediation actions for the dataset's root
// causes plus the standing prevention strategies.
//
// Method: GET /api/v1/datasets/:id/recommendations
//
// Path parameters:
//   - id: Dataset UUID
//
// Success Response: 200 OK
//   - remediations: per-category actions, ordered by denial impact
//   - prevention: static denial-prevention strategies
//
// Error Responses:
//   - 400: DATASET_003 invalid dataset ID
//   - 404: DATASET_002 dataset not found
func (h *ReportHandler) GetRecommendations(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, apierrors.DatasetInvalidID)
	}

	dataset, err := h.datasetService.GetDataset(id)
	if err != nil {
		return h.handleDatasetError(c, err)
	}

	remediations := h.recommendationService.PlanForRootCauses(dataset.Report.RootCauses)

	setReportCacheHeader(c)

	return c.JSON(http.StatusOK, dto.RecommendationsResponse{
		Remediations: dto.ToRecommendationResponses(remediations),
		Prevention:   h.recommendationService.PreventionStrategies(),
	})
}

// ListClaims returns the normalized claim rows of a dataset.
//
// Method: GET /api/v1/datasets/:id/claims
//
// Path parameters:
//   - id: Dataset UUID
//
// Query parameters:
//   - denied_only: Return only denied claims (default: false)
//   - cpt: Filter by CPT code (five characters)
//   - limit: Rows per page (default: 50, max: 500)
//   - offset: Rows to skip (default: 0)
//
// Success Response: 200 OK
//   - claims: normalized claim rows in file order
//   - pagination: total, limit, offset, hasMore
//
// Error Responses:
//   - 400: DATASET_003 invalid dataset ID or VALIDATION_001 bad filters
//   - 404: DATASET_002 dataset not found
func (h *ReportHandler) ListClaims(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, apierrors.DatasetInvalidID)
	}

	var query dto.ClaimsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	dataset, err := h.datasetService.GetDataset(id)
	if err != nil {
		return h.handleDatasetError(c, err)
	}

	claims := dataset.Claims
	if query.DeniedOnly {
		claims = dataset.DeniedClaims()
	}
	if query.CPTCode != "" {
		claims = filterByCPT(claims, query.CPTCode)
	}

	limit := query.Limit
	if limit == 0 {
		limit = defaultClaimsPageSize
	}

	total := len(claims)
	page := paginateClaims(claims, query.Offset, limit)

	return c.JSON(http.StatusOK, dto.ListClaimsResponse{
		Claims: dto.ToClaimResponses(page),
		Pagination: dto.ClaimsPageInfo{
			Total:   total,
			Limit:   limit,
			Offset:  query.Offset,
			HasMore: query.Offset+len(page) < total,
		},
	})
}

func (h *ReportHandler) handleDatasetError(c echo.Context, err error) error {
	if errors.Is(err, repositories.ErrDatasetNotFound) {
		return SendError(c, apierrors.DatasetNotFound)
	}
	return SendSystemError(c, err)
}

func setReportCacheHeader(c echo.Context) {
	c.Response().Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(cacheTTL.Seconds())))
}

func filterByCPT(claims []models.Claim, cptCode string) []models.Claim {
	filtered := make([]models.Claim, 0, len(claims))
	for _, claim := range claims {
		if claim.CPTCode == cptCode {
			filtered = append(filtered, claim)
		}
	}
	return filtered
}

func paginateClaims(claims []models.Claim, offset, limit int) []models.Claim {
	if offset >= len(claims) {
		return []models.Claim{}
	}

	end := offset + limit
	if end > len(claims) {
		end = len(claims)
	}

	return claims[offset:end]
}
