package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/services"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DevHandlerSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	echo               *echo.Echo
	mockDatasetService *service_mocks.MockDatasetServiceInterface
	mockIngestLog      *service_mocks.MockIngestLoggerInterface
	mockGenerator      *service_mocks.MockSampleClaimsGeneratorInterface
	handler            *DevHandler
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerSuite))
}

func (s *DevHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.mockDatasetService = service_mocks.NewMockDatasetServiceInterface(s.ctrl)
	s.mockIngestLog = service_mocks.NewMockIngestLoggerInterface(s.ctrl)
	s.mockGenerator = service_mocks.NewMockSampleClaimsGeneratorInterface(s.ctrl)

	// Built directly so the generator can be swapped for a mock
	s.handler = &DevHandler{
		datasetService: s.mockDatasetService,
		ingestLog:      s.mockIngestLog,
		generator:      s.mockGenerator,
	}
}

func (s *DevHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DevHandlerSuite) newSampleContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *DevHandlerSuite) TestGenerateSampleDataset_Success() {
	c, rec := s.newSampleContext("/api/v1/dev/sample-dataset?rows=100")

	csvBytes := []byte("cpt_code,claim_status\n99213,denied\n")
	dataset := newAnalyzedDataset(uuid.New())

	s.mockGenerator.EXPECT().GenerateCSV(100).Return(csvBytes)
	s.mockDatasetService.EXPECT().
		IngestUpload(gomock.Any(), gomock.Any(), int64(len(csvBytes)), gomock.Any()).
		Return(dataset, nil)
	s.mockIngestLog.EXPECT().LogSampleGenerated(gomock.Any(), dataset.RowCount, len(csvBytes))

	err := s.handler.GenerateSampleDataset(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Equal("sample dataset generated", resp["message"])
	s.Equal(float64(dataset.RowCount), resp["rows"])
	s.NotNil(resp["dataset"])
}

func (s *DevHandlerSuite) TestGenerateSampleDataset_DefaultRows() {
	c, rec := s.newSampleContext("/api/v1/dev/sample-dataset")

	csvBytes := []byte("cpt_code,claim_status\n99213,denied\n")
	dataset := newAnalyzedDataset(uuid.New())

	// Zero passes through; the generator applies its own default row count
	s.mockGenerator.EXPECT().GenerateCSV(0).Return(csvBytes)
	s.mockDatasetService.EXPECT().
		IngestUpload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(dataset, nil)
	s.mockIngestLog.EXPECT().LogSampleGenerated(gomock.Any(), dataset.RowCount, len(csvBytes))

	err := s.handler.GenerateSampleDataset(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *DevHandlerSuite) TestGenerateSampleDataset_RowsClamped() {
	c, rec := s.newSampleContext("/api/v1/dev/sample-dataset?rows=999999")

	csvBytes := []byte("cpt_code,claim_status\n99213,denied\n")
	dataset := newAnalyzedDataset(uuid.New())

	s.mockGenerator.EXPECT().GenerateCSV(maxSampleRows).Return(csvBytes)
	s.mockDatasetService.EXPECT().
		IngestUpload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(dataset, nil)
	s.mockIngestLog.EXPECT().LogSampleGenerated(gomock.Any(), dataset.RowCount, len(csvBytes))

	err := s.handler.GenerateSampleDataset(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *DevHandlerSuite) TestGenerateSampleDataset_IngestBusy() {
	c, _ := s.newSampleContext("/api/v1/dev/sample-dataset?rows=50")

	s.mockGenerator.EXPECT().GenerateCSV(50).Return([]byte("cpt_code\n99213\n"))
	s.mockDatasetService.EXPECT().
		IngestUpload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrIngestBusy)

	err := s.handler.GenerateSampleDataset(c)

	s.Error(err)
	httpErr, ok := err.(*echo.HTTPError)
	s.True(ok, "Error should be an echo.HTTPError")
	if ok {
		s.Equal(http.StatusConflict, httpErr.Code)
	}
}

func (s *DevHandlerSuite) TestGenerateSampleDataset_IngestFails() {
	c, _ := s.newSampleContext("/api/v1/dev/sample-dataset?rows=50")

	s.mockGenerator.EXPECT().GenerateCSV(50).Return([]byte("cpt_code\n99213\n"))
	s.mockDatasetService.EXPECT().
		IngestUpload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("analysis failed"))

	err := s.handler.GenerateSampleDataset(c)

	s.Error(err)
	httpErr, ok := err.(*echo.HTTPError)
	s.True(ok, "Error should be an echo.HTTPError")
	if ok {
		s.Equal(http.StatusInternalServerError, httpErr.Code)
	}
}
