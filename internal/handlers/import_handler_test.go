package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"financehub/internal/dto"
	"financehub/internal/errors"
	"financehub/internal/importer"
	"financehub/internal/services"
	"financehub/internal/services/service_mocks"
)

const sampleBankCSV = "Date,Description,Amount,Running Bal.\n" +
	"01/15/2024,\"TRADER JOE'S #553\",-84.12,\"4,915.88\"\n"

type ImportHandlerTestSuite struct {
	suite.Suite
	echo              *echo.Echo
	ctrl              *gomock.Controller
	mockImportService *service_mocks.MockImportServiceInterface
	handler           *ImportHandler
}

func TestImportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ImportHandlerTestSuite))
}

func (s *ImportHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockImportService = service_mocks.NewMockImportServiceInterface(s.ctrl)
	s.handler = NewImportHandler(s.mockImportService)
}

func (s *ImportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ImportHandlerTestSuite) jsonRequest(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *ImportHandlerTestSuite) TestImportBatch_JSONBody() {
	s.mockImportService.EXPECT().
		ImportBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, files []dto.ImportFileRequest) (*dto.ImportBatchResponse, error) {
			s.Require().Len(files, 1)
			s.Equal("bank.csv", files[0].FileName)
			s.Equal(sampleBankCSV, files[0].Content)
			return &dto.ImportBatchResponse{
				Files: []dto.ImportFileResult{
					{FileName: "bank.csv", Summary: &importer.ImportSummary{FileName: "bank.csv", Imported: 1}},
				},
				TotalImported: 1,
			}, nil
		})

	body, err := json.Marshal(map[string]interface{}{
		"files": []dto.ImportFileRequest{{FileName: "bank.csv", Content: sampleBankCSV}},
	})
	s.Require().NoError(err)

	c, rec := s.jsonRequest(string(body))
	s.NoError(s.handler.ImportBatch(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ImportBatchResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(1, response.TotalImported)
	s.Require().Len(response.Files, 1)
	s.Equal("bank.csv", response.Files[0].FileName)
}

func (s *ImportHandlerTestSuite) TestImportBatch_MultipartUpload() {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("files", "january.csv")
	s.Require().NoError(err)
	_, err = part.Write([]byte(sampleBankCSV))
	s.Require().NoError(err)

	s.Require().NoError(writer.WriteField("source", "bank"))
	s.Require().NoError(writer.WriteField("account", "Joint Checking"))
	s.Require().NoError(writer.Close())

	s.mockImportService.EXPECT().
		ImportBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, files []dto.ImportFileRequest) (*dto.ImportBatchResponse, error) {
			s.Require().Len(files, 1)
			s.Equal("january.csv", files[0].FileName)
			s.Equal("bank", files[0].Source)
			s.Equal("Joint Checking", files[0].Account)
			return &dto.ImportBatchResponse{
				Files: []dto.ImportFileResult{{FileName: "january.csv", Summary: &importer.ImportSummary{}}},
			}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ImportBatch(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ImportHandlerTestSuite) TestImportBatch_NoFiles() {
	c, rec := s.jsonRequest(`{"files":[]}`)

	s.NoError(s.handler.ImportBatch(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.ImportEmptyBatch), response.Error.Code)
}

func (s *ImportHandlerTestSuite) TestImportBatch_InvalidSourceOverride() {
	body := `{"files":[{"file_name":"x.csv","content":"a,b\n1,2\n","source":"paypal"}]}`
	c, _ := s.jsonRequest(body)

	err := s.handler.ImportBatch(c)
	s.Error(err)
}

func (s *ImportHandlerTestSuite) TestImportBatch_FileTooLarge() {
	s.mockImportService.EXPECT().
		ImportBatch(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("huge.csv: %w", services.ErrFileTooLarge))

	body := fmt.Sprintf(`{"files":[{"file_name":"huge.csv","content":%q}]}`, sampleBankCSV)
	c, rec := s.jsonRequest(body)

	s.NoError(s.handler.ImportBatch(c))
	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)

	var response errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.ImportFileTooLarge), response.Error.Code)
}

func (s *ImportHandlerTestSuite) TestImportBatch_PerFileErrorStillSucceeds() {
	// A structurally broken file only fails itself; the batch response
	// carries the error alongside the other summaries.
	s.mockImportService.EXPECT().
		ImportBatch(gomock.Any(), gomock.Any()).
		Return(&dto.ImportBatchResponse{
			Files: []dto.ImportFileResult{
				{FileName: "bank.csv", Summary: &importer.ImportSummary{FileName: "bank.csv", Imported: 1}},
				{FileName: "notes.txt", Error: "no tabular data found"},
			},
			TotalImported: 1,
		}, nil)

	body, err := json.Marshal(map[string]interface{}{
		"files": []dto.ImportFileRequest{
			{FileName: "bank.csv", Content: sampleBankCSV},
			{FileName: "notes.txt", Content: "just some notes\n"},
		},
	})
	s.Require().NoError(err)

	c, rec := s.jsonRequest(string(body))
	s.NoError(s.handler.ImportBatch(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ImportBatchResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Files, 2)
	s.Empty(response.Files[0].Error)
	s.NotEmpty(response.Files[1].Error)
}

func (s *ImportHandlerTestSuite) TestImportBatch_ServiceError() {
	s.mockImportService.EXPECT().
		ImportBatch(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("db down"))

	body := fmt.Sprintf(`{"files":[{"file_name":"bank.csv","content":%q}]}`, sampleBankCSV)
	c, rec := s.jsonRequest(body)

	s.NoError(s.handler.ImportBatch(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}
