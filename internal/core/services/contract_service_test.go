package services_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/core/services"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const samplePDF = "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n"

type ContractServiceTestSuite struct {
	suite.Suite
	repo    *MockContractRepository
	store   *MockDocumentStore
	service portssvc.ContractSvcFacade
	ctx     context.Context
}

func (suite *ContractServiceTestSuite) SetupTest() {
	suite.repo = new(MockContractRepository)
	suite.store = new(MockDocumentStore)
	suite.service = suite.newService(1 << 20)
	suite.ctx = context.Background()
}

func (suite *ContractServiceTestSuite) newService(maxSize int64) portssvc.ContractSvcFacade {
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	return services.NewContractService(suite.repo, suite.store,
		services.WithMaxDocumentSize(maxSize),
		services.WithContractServiceOptions(
			services.WithClock(fixedClock),
			services.WithEventPublisher(publisher),
		))
}

func createRequest() dto.CreateContractRequest {
	return dto.CreateContractRequest{
		Title:     "Cobertura de eventos",
		Client:    "Empresa X",
		Value:     "4500,00",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-20",
	}
}

func pdfUpload(content string) domain.DocumentUpload {
	return domain.DocumentUpload{Name: "contrato assinado.pdf", Size: int64(len(content)), Content: strings.NewReader(content)}
}

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

func (suite *ContractServiceTestSuite) TestCreateContract_StoresDocument() {
	suite.store.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "2025/03/") && strings.HasSuffix(key, "contrato_assinado.pdf")
	})).Return(int64(0), nil).Once()
	suite.repo.On("SaveContract", mock.Anything, mock.MatchedBy(func(c domain.Contract) bool {
		return c.Document != nil && c.Document.ContentType == "application/pdf" && c.Value.Equal(decimal.NewFromInt(4500))
	})).Return(nil).Once()

	contract, err := suite.service.CreateContract(suite.ctx, createRequest(), pdfUpload(samplePDF), "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ContractStatusActive, contract.View.Status)
	suite.Equal(10, contract.View.DaysRemaining)
	suite.True(contract.View.ExpiringSoon)
	suite.Equal(int64(len(samplePDF)), contract.Document.Size)
	suite.Equal("contrato_assinado.pdf", contract.Document.Name)
	suite.Equal(fixedNow, contract.Document.UploadedAt)
	suite.repo.AssertExpectations(suite.T())
	suite.store.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestCreateContract_RejectsNonPDF() {
	upload := domain.DocumentUpload{Name: "contrato.pdf", Size: 11, Content: strings.NewReader("hello world")}

	_, err := suite.service.CreateContract(suite.ctx, createRequest(), upload, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.store.AssertNotCalled(suite.T(), "Put", mock.Anything, mock.Anything)
}

func (suite *ContractServiceTestSuite) TestCreateContract_RequiresDocument() {
	_, err := suite.service.CreateContract(suite.ctx, createRequest(), domain.DocumentUpload{}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ContractServiceTestSuite) TestCreateContract_EndBeforeStart() {
	req := createRequest()
	req.EndDate = "2025-02-01"

	_, err := suite.service.CreateContract(suite.ctx, req, pdfUpload(samplePDF), "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.store.AssertNotCalled(suite.T(), "Put", mock.Anything, mock.Anything)
}

func (suite *ContractServiceTestSuite) TestCreateContract_DeclaredSizeTooLarge() {
	svc := suite.newService(16)
	upload := pdfUpload(samplePDF)

	_, err := svc.CreateContract(suite.ctx, createRequest(), upload, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.store.AssertNotCalled(suite.T(), "Put", mock.Anything, mock.Anything)
}

func (suite *ContractServiceTestSuite) TestCreateContract_StreamedSizeTooLarge() {
	svc := suite.newService(16)
	upload := pdfUpload(samplePDF)
	upload.Size = 0
	suite.store.On("Put", mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	suite.store.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.CreateContract(suite.ctx, createRequest(), upload, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.store.AssertExpectations(suite.T())
	suite.repo.AssertNotCalled(suite.T(), "SaveContract", mock.Anything, mock.Anything)
}

func (suite *ContractServiceTestSuite) TestCreateContract_SaveFailureRemovesDocument() {
	suite.store.On("Put", mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	suite.store.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()
	suite.repo.On("SaveContract", mock.Anything, mock.Anything).Return(apperrors.ErrConnectivity).Once()

	_, err := suite.service.CreateContract(suite.ctx, createRequest(), pdfUpload(samplePDF), "user-1")

	suite.ErrorIs(err, apperrors.ErrConnectivity)
	suite.store.AssertExpectations(suite.T())
	suite.Empty(suite.store.stored)
}

func (suite *ContractServiceTestSuite) TestListContracts_FiltersDerivedStatus() {
	contracts := []domain.Contract{
		{ContractID: "future", StartDate: day("2025-04-01"), EndDate: day("2025-05-01")},
		{ContractID: "current", StartDate: day("2025-03-01"), EndDate: day("2025-06-01")},
		{ContractID: "past", StartDate: day("2025-01-01"), EndDate: day("2025-02-01")},
	}
	suite.repo.On("ListContracts", mock.Anything, mock.Anything).Return(contracts, nil).Once()

	out, err := suite.service.ListContracts(suite.ctx, dto.ListContractsParams{Status: "awaiting"})

	suite.Require().NoError(err)
	suite.Require().Len(out, 1)
	suite.Equal("future", out[0].ContractID)
	suite.Equal(domain.ContractStatusAwaiting, out[0].View.Status)
}

func (suite *ContractServiceTestSuite) TestGetContractStats() {
	contracts := []domain.Contract{
		{Value: decimal.NewFromInt(1000), StartDate: day("2025-03-01"), EndDate: day("2025-06-01")},
		{Value: decimal.NewFromInt(500), StartDate: day("2025-01-01"), EndDate: day("2025-02-01")},
	}
	suite.repo.On("ListContracts", mock.Anything, domain.ContractFilter{}).Return(contracts, nil).Once()

	stats, err := suite.service.GetContractStats(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(2, stats.Total)
	suite.Equal(1, stats.ByStatus[domain.ContractStatusActive])
	suite.Equal(1, stats.ByStatus[domain.ContractStatusFinished])
	suite.Equal("1500.00", stats.TotalValue.StringFixed(2))
}

func (suite *ContractServiceTestSuite) TestOpenContractDocument() {
	suite.store.stored = map[string][]byte{"2025/03/abc_contrato.pdf": []byte(samplePDF)}
	suite.repo.On("FindContractByID", mock.Anything, "contract-1").Return(&domain.Contract{
		ContractID: "contract-1",
		Document:   &domain.DocumentRef{Name: "contrato.pdf", StorageKey: "2025/03/abc_contrato.pdf"},
	}, nil).Once()
	suite.store.On("Open", mock.Anything, "2025/03/abc_contrato.pdf").Return(nil).Once()

	ref, rc, err := suite.service.OpenContractDocument(suite.ctx, "contract-1")

	suite.Require().NoError(err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	suite.Require().NoError(err)
	suite.Equal(samplePDF, string(data))
	suite.Equal("contrato.pdf", ref.Name)
}

func (suite *ContractServiceTestSuite) TestOpenContractDocument_NoDocument() {
	suite.repo.On("FindContractByID", mock.Anything, "contract-1").Return(&domain.Contract{ContractID: "contract-1"}, nil).Once()

	_, _, err := suite.service.OpenContractDocument(suite.ctx, "contract-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ContractServiceTestSuite) TestDeleteContract_RemovesDocument() {
	suite.repo.On("FindContractByID", mock.Anything, "contract-1").Return(&domain.Contract{
		ContractID: "contract-1",
		Document:   &domain.DocumentRef{StorageKey: "2025/03/abc_contrato.pdf"},
	}, nil).Once()
	suite.repo.On("DeleteContract", mock.Anything, "contract-1").Return(nil).Once()
	suite.store.On("Delete", mock.Anything, "2025/03/abc_contrato.pdf").Return(errors.New("disk gone")).Once()

	err := suite.service.DeleteContract(suite.ctx, "contract-1", "user-1")

	suite.Require().NoError(err)
	suite.repo.AssertExpectations(suite.T())
	suite.store.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestUpdateContract_RevalidatesDates() {
	suite.repo.On("FindContractByID", mock.Anything, "contract-1").Return(&domain.Contract{
		ContractID: "contract-1",
		Title:      "Cobertura",
		Client:     "Empresa X",
		Value:      decimal.NewFromInt(100),
		StartDate:  day("2025-03-01"),
		EndDate:    day("2025-03-20"),
	}, nil).Once()

	_, err := suite.service.UpdateContract(suite.ctx, "contract-1", dto.UpdateContractRequest{EndDate: ptr("2025-02-20")}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "UpdateContract", mock.Anything, mock.Anything, mock.Anything)
}

func TestContractServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContractServiceTestSuite))
}
