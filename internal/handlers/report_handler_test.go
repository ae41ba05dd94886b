package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/dto"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/repositories"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ReportHandlerSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	echo               *echo.Echo
	mockDatasetService *service_mocks.MockDatasetServiceInterface
	mockRecommender    *service_mocks.MockRecommendationServiceInterface
	handler            *ReportHandler
	datasetID          uuid.UUID
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerSuite))
}

func (s *ReportHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockDatasetService = service_mocks.NewMockDatasetServiceInterface(s.ctrl)
	s.mockRecommender = service_mocks.NewMockRecommendationServiceInterface(s.ctrl)
	s.handler = NewReportHandler(s.mockDatasetService, s.mockRecommender)
	s.datasetID = uuid.New()
}

func (s *ReportHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportHandlerSuite) newIDContext(target, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func (s *ReportHandlerSuite) newSummaryContext(target, id, group string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/datasets/:id/summaries/:group")
	c.SetParamNames("id", "group")
	c.SetParamValues(id, group)
	return c, rec
}

// ========================================
// GET /api/v1/datasets/:id/report Tests
// ========================================

func (s *ReportHandlerSuite) TestGetReport_Success() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/report", s.datasetID.String())

	dataset := newAnalyzedDataset(s.datasetID)
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)

	err := s.handler.GetReport(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("private, max-age=300", rec.Header().Get("Cache-Control"))

	var resp dto.ReportResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Equal(int64(4), resp.Totals.TotalClaims)
	s.Equal(int64(2), resp.Totals.DeniedClaims)
	s.Equal("640", resp.Totals.TotalBilled)
	s.Len(resp.Codes, 3)
	s.Equal("99214", resp.Codes[0].Key)
	s.Len(resp.Payers, 2)
	s.Len(resp.Providers, 2)
	s.Len(resp.CodePayerCells, 4)
	s.Len(resp.CodeProviderCells, 4)
	s.Len(resp.RootCauses, 2)
}

func (s *ReportHandlerSuite) TestGetReport_TopNRestrictsCodesAndHeatmaps() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/report?top_n=1", s.datasetID.String())

	dataset := newAnalyzedDataset(s.datasetID)
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)

	err := s.handler.GetReport(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ReportResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Len(resp.Codes, 1)
	s.Equal("99214", resp.Codes[0].Key)
	// Heatmap cells outside the kept codes are dropped
	s.Len(resp.CodePayerCells, 1)
	s.Equal("99214", resp.CodePayerCells[0].CPTCode)
	s.Len(resp.CodeProviderCells, 1)
	// Payer and provider tables stay complete
	s.Len(resp.Payers, 2)
	s.Len(resp.Providers, 2)
}

func (s *ReportHandlerSuite) TestGetReport_NullRateForZeroClaims() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/report", s.datasetID.String())

	dataset := newAnalyzedDataset(s.datasetID)
	dataset.Report.Totals = models.DatasetTotals{}
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)

	err := s.handler.GetReport(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	// A rate over zero claims is null, never 0
	s.Contains(rec.Body.String(), `"denialRate":null`)
}

func (s *ReportHandlerSuite) TestGetReport_TopNOutOfRange() {
	c, _ := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/report?top_n=51", s.datasetID.String())

	err := s.handler.GetReport(c)

	s.Error(err)
	var vErrs validator.ValidationErrors
	s.ErrorAs(err, &vErrs)
}

func (s *ReportHandlerSuite) TestGetReport_InvalidID() {
	c, rec := s.newIDContext("/api/v1/datasets/not-a-uuid/report", "not-a-uuid")

	err := s.handler.GetReport(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "DATASET_003")
}

func (s *ReportHandlerSuite) TestGetReport_NotFound() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/report", s.datasetID.String())

	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(nil, repositories.ErrDatasetNotFound)

	err := s.handler.GetReport(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "DATASET_002")
}

// ========================================
// GET /api/v1/datasets/:id/summaries/:group Tests
// ========================================

func (s *ReportHandlerSuite) TestGetSummaryTable_Codes() {
	c, rec := s.newSummaryContext("/api/v1/datasets/"+s.datasetID.String()+"/summaries/codes", s.datasetID.String(), "codes")

	dataset := newAnalyzedDataset(s.datasetID)
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)

	err := s.handler.GetSummaryTable(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SummaryTableResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Equal("codes", resp.Group)
	s.Len(resp.Rows, 3)
	s.Equal("99214", resp.Rows[0].Key)
}

func (s *ReportHandlerSuite) TestGetSummaryTable_PayersWithTopN() {
	c, rec := s.newSummaryContext("/api/v1/datasets/"+s.datasetID.String()+"/summaries/payers?top_n=1", s.datasetID.String(), "payers")

	dataset := newAnalyzedDataset(s.datasetID)
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)

	err := s.handler.GetSummaryTable(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SummaryTableResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Equal("payers", resp.Group)
	s.Len(resp.Rows, 1)
	s.Equal("Aetna", resp.Rows[0].Key)
}

func (s *ReportHandlerSuite) TestGetSummaryTable_Providers() {
	c, rec := s.newSummaryContext("/api/v1/datasets/"+s.datasetID.String()+"/summaries/providers", s.datasetID.String(), "providers")

	dataset := newAnalyzedDataset(s.datasetID)
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)

	err := s.handler.GetSummaryTable(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SummaryTableResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Equal("providers", resp.Group)
	s.Len(resp.Rows, 2)
	s.Equal("Dr. Jones", resp.Rows[0].Key)
}

func (s *ReportHandlerSuite) TestGetSummaryTable_UnknownGroup() {
	c, _ := s.newSummaryContext("/api/v1/datasets/"+s.datasetID.String()+"/summaries/regions", s.datasetID.String(), "regions")

	err := s.handler.GetSummaryTable(c)

	s.Error(err)
	var vErrs validator.ValidationErrors
	s.ErrorAs(err, &vErrs)
}

func (s *ReportHandlerSuite) TestGetSummaryTable_NotFound() {
	c, rec := s.newSummaryContext("/api/v1/datasets/"+s.datasetID.String()+"/summaries/codes", s.datasetID.String(), "codes")

	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(nil, repositories.ErrDatasetNotFound)

	err := s.handler.GetSummaryTable(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "DATASET_002")
}

// ========================================
// GET /api/v1/datasets/:id/root-causes Tests
// ========================================

func (s *ReportHandlerSuite) TestGetRootCauses_Success() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/root-causes", s.datasetID.String())

	dataset := newAnalyzedDataset(s.datasetID)
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)

	err := s.handler.GetRootCauses(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.RootCausesResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Len(resp.RootCauses, 2)
	s.Equal(models.RootCauseMissingDocumentation, resp.RootCauses[0].Category)
	s.Equal(0.5, resp.RootCauses[0].ShareOfDenials)
	s.Equal([]string{"missing clinical documentation"}, resp.RootCauses[0].ExampleReasons)
}

func (s *ReportHandlerSuite) TestGetRootCauses_InvalidID() {
	c, rec := s.newIDContext("/api/v1/datasets/xyz/root-causes", "xyz")

	err := s.handler.GetRootCauses(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "DATASET_003")
}

// ========================================
// GET /api/v1/datasets/:id/recommendations Tests
// ========================================

func (s *ReportHandlerSuite) TestGetRecommendations_Success() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/recommendations", s.datasetID.String())

	dataset := newAnalyzedDataset(s.datasetID)
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)
	s.mockRecommender.EXPECT().
		PlanForRootCauses(dataset.Report.RootCauses).
		Return([]models.Recommendation{
			{Category: models.RootCausePriorAuthorization, Action: "Verify authorization before scheduling"},
		})
	s.mockRecommender.EXPECT().
		PreventionStrategies().
		Return([]string{"Run eligibility checks at intake"})

	err := s.handler.GetRecommendations(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.RecommendationsResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Len(resp.Remediations, 1)
	s.Equal(models.RootCausePriorAuthorization, resp.Remediations[0].Category)
	s.Equal([]string{"Run eligibility checks at intake"}, resp.Prevention)
}

func (s *ReportHandlerSuite) TestGetRecommendations_NotFound() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/recommendations", s.datasetID.String())

	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(nil, repositories.ErrDatasetNotFound)

	err := s.handler.GetRecommendations(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "DATASET_002")
}

// ========================================
// GET /api/v1/datasets/:id/claims Tests
// ========================================

func (s *ReportHandlerSuite) TestListClaims_Defaults() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/claims", s.datasetID.String())

	dataset := newAnalyzedDataset(s.datasetID)
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)

	err := s.handler.ListClaims(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	// Claim rows change with each upload; never let caches hold them
	s.Empty(rec.Header().Get("Cache-Control"))

	var resp dto.ListClaimsResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Len(resp.Claims, 4)
	s.Equal(2, resp.Claims[0].RowNumber)
	s.Equal(4, resp.Pagination.Total)
	s.Equal(50, resp.Pagination.Limit)
	s.Equal(0, resp.Pagination.Offset)
	s.False(resp.Pagination.HasMore)
}

func (s *ReportHandlerSuite) TestListClaims_DeniedOnly() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/claims?denied_only=true", s.datasetID.String())

	dataset := newAnalyzedDataset(s.datasetID)
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)

	err := s.handler.ListClaims(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListClaimsResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Len(resp.Claims, 2)
	s.True(resp.Claims[0].Denied)
	s.True(resp.Claims[1].Denied)
	s.Equal(2, resp.Pagination.Total)
}

func (s *ReportHandlerSuite) TestListClaims_CPTFilter() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/claims?cpt=99213", s.datasetID.String())

	dataset := newAnalyzedDataset(s.datasetID)
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)

	err := s.handler.ListClaims(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListClaimsResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Len(resp.Claims, 2)
	for _, claim := range resp.Claims {
		s.Equal("99213", claim.CPTCode)
	}
}

func (s *ReportHandlerSuite) TestListClaims_DeniedOnlyWithCPTFilter() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/claims?denied_only=true&cpt=99213", s.datasetID.String())

	dataset := newAnalyzedDataset(s.datasetID)
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)

	err := s.handler.ListClaims(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListClaimsResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Len(resp.Claims, 1)
	s.Equal(3, resp.Claims[0].RowNumber)
	s.Equal("prior authorization required", resp.Claims[0].DenialReason)
}

func (s *ReportHandlerSuite) TestListClaims_Pagination() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/claims?limit=2", s.datasetID.String())

	dataset := newAnalyzedDataset(s.datasetID)
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)

	err := s.handler.ListClaims(c)

	s.NoError(err)

	var resp dto.ListClaimsResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Len(resp.Claims, 2)
	s.Equal(4, resp.Pagination.Total)
	s.Equal(2, resp.Pagination.Limit)
	s.True(resp.Pagination.HasMore)
}

func (s *ReportHandlerSuite) TestListClaims_LastPage() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/claims?limit=2&offset=3", s.datasetID.String())

	dataset := newAnalyzedDataset(s.datasetID)
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)

	err := s.handler.ListClaims(c)

	s.NoError(err)

	var resp dto.ListClaimsResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Len(resp.Claims, 1)
	s.Equal(5, resp.Claims[0].RowNumber)
	s.False(resp.Pagination.HasMore)
}

func (s *ReportHandlerSuite) TestListClaims_OffsetPastEnd() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/claims?offset=100", s.datasetID.String())

	dataset := newAnalyzedDataset(s.datasetID)
	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(dataset, nil)

	err := s.handler.ListClaims(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListClaimsResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Len(resp.Claims, 0)
	s.Equal(4, resp.Pagination.Total)
	s.False(resp.Pagination.HasMore)
}

func (s *ReportHandlerSuite) TestListClaims_InvalidCPTFilter() {
	c, _ := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/claims?cpt=abc", s.datasetID.String())

	err := s.handler.ListClaims(c)

	s.Error(err)
	var vErrs validator.ValidationErrors
	s.ErrorAs(err, &vErrs)
}

func (s *ReportHandlerSuite) TestListClaims_LimitOverMax() {
	c, _ := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/claims?limit=501", s.datasetID.String())

	err := s.handler.ListClaims(c)

	s.Error(err)
	var vErrs validator.ValidationErrors
	s.ErrorAs(err, &vErrs)
}

func (s *ReportHandlerSuite) TestListClaims_NotFound() {
	c, rec := s.newIDContext("/api/v1/datasets/"+s.datasetID.String()+"/claims", s.datasetID.String())

	s.mockDatasetService.EXPECT().GetDataset(s.datasetID).Return(nil, repositories.ErrDatasetNotFound)

	err := s.handler.ListClaims(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "DATASET_002")
}
