package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/sims-ppob/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/sims-ppob/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testEmail = "a@x.com"
	testToken = "valid-token"
	testUser  = uint64(7)
)

// pngHeader is enough of a PNG for content sniffing
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type fixture struct {
	router   *gin.Engine
	accounts *usecasemocks.MockAccountUseCase
	ledger   *usecasemocks.MockLedgerUseCase
	catalog  *usecasemocks.MockCatalogUseCase
}

func newFixture(t *testing.T, uploads UploadSettings) *fixture {
	gin.SetMode(gin.TestMode)

	tokens := coremocks.NewMockTokenService(t)
	tokens.EXPECT().Verify(testToken).Return(testEmail, nil).Maybe()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 2, 17, 10, 0, 0, 0, time.UTC)).Maybe()

	f := &fixture{
		router:   gin.New(),
		accounts: usecasemocks.NewMockAccountUseCase(t),
		ledger:   usecasemocks.NewMockLedgerUseCase(t),
		catalog:  usecasemocks.NewMockCatalogUseCase(t),
	}
	f.accounts.EXPECT().ResolveUser(mock.Anything, testEmail).Return(&entity.User{ID: testUser, Email: testEmail}, nil).Maybe()

	noop := logger.NewNoopLogger()
	users := NewUserHandler(f.accounts, uploads, noop)
	transactions := NewTransactionHandler(f.ledger, noop)
	catalog := NewCatalogHandler(f.catalog)
	health := NewHealthHandler(mockTime)

	auth := middleware.Authenticate(tokens)
	resolve := middleware.ResolveUser(f.accounts)

	r := f.router
	r.GET("/", health.Health)
	r.POST("/registration", middleware.BindJSON[dto.RegisterRequest](), users.Register)
	r.POST("/login", middleware.BindJSON[dto.LoginRequest](), users.Login)
	r.GET("/profile", auth, users.GetProfile)
	r.PUT("/profile/update", auth, middleware.BindJSON[dto.UpdateProfileRequest](), users.UpdateProfile)
	r.PUT("/profile/image", auth, users.UpdateProfileImage)
	r.GET("/banner", catalog.ListBanners)
	r.GET("/services", auth, catalog.ListServices)
	r.GET("/balance", auth, resolve, transactions.GetBalance)
	r.POST("/topup", auth, resolve, middleware.BindJSON[dto.TopUpRequest](), transactions.TopUp)
	r.POST("/transaction", auth, resolve, middleware.BindJSON[dto.TransactionRequest](), transactions.Pay)
	r.GET("/transaction/history", auth, resolve, middleware.BindQuery[dto.HistoryQuery](), transactions.History)
	return f
}

func (f *fixture) do(method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) (int, string, json.RawMessage) {
	t.Helper()
	var body struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Status, body.Message, body.Data
}

func TestHealth(t *testing.T) {
	f := newFixture(t, UploadSettings{})
	w := f.do(http.MethodGet, "/", "", false)

	assert.Equal(t, http.StatusOK, w.Code)
	status, message, data := envelope(t, w)
	assert.Equal(t, 0, status)
	assert.Equal(t, "SIMS PPOB API is running", message)
	assert.JSONEq(t, `{"version":"1.0.0","timestamp":"2024-02-17T10:00:00Z"}`, string(data))
}

func TestRegister(t *testing.T) {
	body := `{"email":"a@x.com","password":"pw123456","first_name":"A","last_name":"B"}`

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.accounts.EXPECT().Register(mock.Anything, usecase.RegisterInput{
			Email: testEmail, FirstName: "A", LastName: "B", Password: "pw123456",
		}).Return(nil).Once()

		w := f.do(http.MethodPost, "/registration", body, false)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":0,"message":"Registrasi berhasil silahkan login","data":null}`, w.Body.String())
	})

	t.Run("Email taken", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.accounts.EXPECT().Register(mock.Anything, mock.Anything).Return(errs.ErrEmailTaken).Once()

		w := f.do(http.MethodPost, "/registration", body, false)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		status, message, _ := envelope(t, w)
		assert.Equal(t, 101, status)
		assert.Equal(t, "Email sudah terdaftar", message)
	})

	t.Run("Invalid body never reaches the use case", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		w := f.do(http.MethodPost, "/registration", `{"email":"a@x.com"}`, false)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		status, _, _ := envelope(t, w)
		assert.Equal(t, 102, status)
	})
}

func TestLogin(t *testing.T) {
	body := `{"email":"a@x.com","password":"pw123456"}`

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.accounts.EXPECT().Login(mock.Anything, testEmail, "pw123456").Return("signed.jwt.token", nil).Once()

		w := f.do(http.MethodPost, "/login", body, false)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":0,"message":"Login Sukses","data":{"token":"signed.jwt.token"}}`, w.Body.String())
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.accounts.EXPECT().Login(mock.Anything, testEmail, "pw123456").Return("", errs.ErrInvalidCredentials).Once()

		w := f.do(http.MethodPost, "/login", body, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		status, message, data := envelope(t, w)
		assert.Equal(t, 103, status)
		assert.Equal(t, "Username atau password salah", message)
		assert.Equal(t, "null", string(data))
	})
}

func TestProfile(t *testing.T) {
	t.Run("Get profile without image", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.accounts.EXPECT().GetProfile(mock.Anything, testEmail).
			Return(&entity.Profile{Email: testEmail, FirstName: "A", LastName: "B"}, nil).Once()

		w := f.do(http.MethodGet, "/profile", "", true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":0,"message":"Sukses","data":{"email":"a@x.com","first_name":"A","last_name":"B","profile_image":null}}`, w.Body.String())
	})

	t.Run("Unknown user", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.accounts.EXPECT().GetProfile(mock.Anything, testEmail).Return(nil, errs.ErrUserNotFound).Once()

		w := f.do(http.MethodGet, "/profile", "", true)
		assert.Equal(t, http.StatusNotFound, w.Code)
		status, message, _ := envelope(t, w)
		assert.Equal(t, 104, status)
		assert.Equal(t, "User tidak ditemukan", message)
	})

	t.Run("Update names", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.accounts.EXPECT().UpdateProfile(mock.Anything, testEmail, "New", "Name").
			Return(&entity.Profile{Email: testEmail, FirstName: "New", LastName: "Name"}, nil).Once()

		w := f.do(http.MethodPut, "/profile/update", `{"first_name":"New","last_name":"Name"}`, true)
		assert.Equal(t, http.StatusOK, w.Code)
		_, message, data := envelope(t, w)
		assert.Equal(t, "Update Pofile berhasil", message)
		assert.Contains(t, string(data), `"first_name":"New"`)
	})

	t.Run("Update requires a token", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		w := f.do(http.MethodPut, "/profile/update", `{"first_name":"New","last_name":"Name"}`, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func multipartImage(t *testing.T, field, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func uploadImage(f *fixture, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/profile/image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+testToken)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestUpdateProfileImage(t *testing.T) {
	t.Run("PNG upload", func(t *testing.T) {
		f := newFixture(t, UploadSettings{MaxSize: 1 << 20})
		url := "http://example.com/uploads/a_x_com_1708164000000.png"
		f.accounts.EXPECT().UpdateProfileImage(mock.Anything, testEmail, mock.MatchedBy(func(u *entity.ImageUpload) bool {
			return u.OriginalName == "me.png" && u.DeclaredType == "image/png" && u.DetectedType == "image/png"
		}), "http://example.com/uploads").Return(&entity.Profile{Email: testEmail, ProfileImage: &url}, nil).Once()

		body, contentType := multipartImage(t, "file", "me.png", "image/png", pngHeader)
		w := uploadImage(f, body, contentType)

		assert.Equal(t, http.StatusOK, w.Code)
		_, message, data := envelope(t, w)
		assert.Equal(t, "Update Profile Image berhasil", message)
		assert.Contains(t, string(data), url)
	})

	t.Run("Public base URL", func(t *testing.T) {
		f := newFixture(t, UploadSettings{MaxSize: 1 << 20, PublicBaseURL: "https://cdn.example/"})
		f.accounts.EXPECT().UpdateProfileImage(mock.Anything, testEmail, mock.Anything, "https://cdn.example/uploads").
			Return(&entity.Profile{Email: testEmail}, nil).Once()

		body, contentType := multipartImage(t, "file", "me.png", "image/png", pngHeader)
		assert.Equal(t, http.StatusOK, uploadImage(f, body, contentType).Code)
	})

	t.Run("GIF is refused by the account rules", func(t *testing.T) {
		f := newFixture(t, UploadSettings{MaxSize: 1 << 20})
		f.accounts.EXPECT().UpdateProfileImage(mock.Anything, testEmail, mock.Anything, mock.Anything).
			Return(nil, errs.ErrInvalidImageFormat).Once()

		body, contentType := multipartImage(t, "file", "me.gif", "image/gif", []byte("GIF89a\x01\x00\x01\x00"))
		w := uploadImage(f, body, contentType)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		status, message, _ := envelope(t, w)
		assert.Equal(t, 102, status)
		assert.Equal(t, "Format Image tidak sesuai", message)
	})

	t.Run("Missing file field", func(t *testing.T) {
		f := newFixture(t, UploadSettings{MaxSize: 1 << 20})
		body, contentType := multipartImage(t, "avatar", "me.png", "image/png", pngHeader)
		w := uploadImage(f, body, contentType)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		_, message, _ := envelope(t, w)
		assert.Equal(t, "Format Image tidak sesuai", message)
	})

	t.Run("Body above the size limit", func(t *testing.T) {
		f := newFixture(t, UploadSettings{MaxSize: 64})
		body, contentType := multipartImage(t, "file", "me.png", "image/png", bytes.Repeat(pngHeader, 20))
		w := uploadImage(f, body, contentType)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		status, _, _ := envelope(t, w)
		assert.Equal(t, 102, status)
	})
}

func TestCatalog(t *testing.T) {
	t.Run("Banners are public", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.catalog.EXPECT().ListBanners(mock.Anything).Return([]*entity.Banner{
			{ID: 1, Name: "Banner 1", Image: "https://nutech-integrasi.app/dummy.jpg", Description: "Lerem Ipsum Dolor sit amet"},
		}, nil).Once()

		w := f.do(http.MethodGet, "/banner", "", false)
		assert.Equal(t, http.StatusOK, w.Code)
		_, message, data := envelope(t, w)
		assert.Equal(t, "Sukses", message)
		assert.JSONEq(t, `[{"banner_name":"Banner 1","banner_image":"https://nutech-integrasi.app/dummy.jpg","description":"Lerem Ipsum Dolor sit amet"}]`, string(data))
	})

	t.Run("Services need a token", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		w := f.do(http.MethodGet, "/services", "", false)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		status, _, _ := envelope(t, w)
		assert.Equal(t, 108, status)
	})

	t.Run("Services", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.catalog.EXPECT().ListServices(mock.Anything).Return([]*entity.Service{
			{ID: 2, Code: "PLN", Name: "Listrik", Icon: "https://nutech-integrasi.app/dummy.jpg", Tariff: 10000},
		}, nil).Once()

		w := f.do(http.MethodGet, "/services", "", true)
		assert.Equal(t, http.StatusOK, w.Code)
		_, _, data := envelope(t, w)
		assert.JSONEq(t, `[{"service_code":"PLN","service_name":"Listrik","service_icon":"https://nutech-integrasi.app/dummy.jpg","service_tariff":10000}]`, string(data))
	})

	t.Run("Empty catalog is an empty array", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.catalog.EXPECT().ListBanners(mock.Anything).Return(nil, nil).Once()

		w := f.do(http.MethodGet, "/banner", "", false)
		_, _, data := envelope(t, w)
		assert.Equal(t, "[]", string(data))
	})
}

func TestBalanceAndTopUp(t *testing.T) {
	t.Run("Balance", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.ledger.EXPECT().GetBalance(mock.Anything, testUser).Return(int64(995000), nil).Once()

		w := f.do(http.MethodGet, "/balance", "", true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":0,"message":"Get Balance Berhasil","data":{"balance":995000}}`, w.Body.String())
	})

	t.Run("Top up", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.ledger.EXPECT().TopUp(mock.Anything, testUser, int64(1000000)).Return(int64(1000000), nil).Once()

		w := f.do(http.MethodPost, "/topup", `{"top_up_amount":1000000}`, true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":0,"message":"Top Up Balance berhasil","data":{"balance":1000000}}`, w.Body.String())
	})

	t.Run("Zero top up", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.ledger.EXPECT().TopUp(mock.Anything, testUser, int64(0)).Return(int64(0), errs.ErrInvalidAmount).Once()

		w := f.do(http.MethodPost, "/topup", `{"top_up_amount":0}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		status, message, _ := envelope(t, w)
		assert.Equal(t, 102, status)
		assert.Equal(t, "Top Up Amount tidak valid", message)
	})

	t.Run("Overflowing top up", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.ledger.EXPECT().TopUp(mock.Anything, testUser, int64(9007199254740992)).Return(int64(0), errs.ErrAmountOverflow).Once()

		w := f.do(http.MethodPost, "/topup", `{"top_up_amount":9007199254740992}`, true)
		_, message, _ := envelope(t, w)
		assert.Equal(t, "Jumlah top up terlalu besar", message)
	})
}

func TestPay(t *testing.T) {
	t.Run("Receipt", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.ledger.EXPECT().Pay(mock.Anything, testUser, "PLN").Return(&entity.Receipt{
			InvoiceNumber:   "INV17022024-0123456789ABCDEF",
			ServiceCode:     "PLN",
			ServiceName:     "Listrik",
			TransactionType: entity.TransactionTypePayment,
			TotalAmount:     10000,
			CreatedOn:       time.Date(2024, 2, 17, 10, 0, 0, 0, time.UTC),
		}, nil).Once()

		w := f.do(http.MethodPost, "/transaction", `{"service_code":"PLN"}`, true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":0,"message":"Transaksi berhasil","data":{
			"invoice_number":"INV17022024-0123456789ABCDEF","service_code":"PLN","service_name":"Listrik",
			"transaction_type":"PAYMENT","total_amount":10000,"created_on":"2024-02-17T10:00:00Z"}}`, w.Body.String())
	})

	t.Run("Unknown service", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.ledger.EXPECT().Pay(mock.Anything, testUser, "NOPE").Return(nil, errs.ErrServiceNotFound).Once()

		w := f.do(http.MethodPost, "/transaction", `{"service_code":"NOPE"}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		_, message, _ := envelope(t, w)
		assert.Equal(t, "Service atau Layanan tidak ditemukan", message)
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.ledger.EXPECT().Pay(mock.Anything, testUser, "ZAKAT").Return(nil, errs.NewInsufficientBalanceError(testUser, 300000, 100)).Once()

		w := f.do(http.MethodPost, "/transaction", `{"service_code":"ZAKAT"}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		status, message, _ := envelope(t, w)
		assert.Equal(t, 105, status)
		assert.Equal(t, "Saldo tidak mencukupi", message)
	})

	t.Run("Missing service code", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		w := f.do(http.MethodPost, "/transaction", `{}`, true)
		_, message, _ := envelope(t, w)
		assert.Equal(t, "Service code wajib diisi", message)
	})
}

func TestHistory(t *testing.T) {
	created := time.Date(2024, 2, 17, 10, 0, 0, 0, time.UTC)
	code := "PLN"
	records := []*entity.Transaction{
		{ID: 2, UserID: testUser, InvoiceNumber: "INV-2", ServiceCode: &code, Type: entity.TransactionTypePayment, Description: "Listrik", TotalAmount: 10000, CreatedOn: created},
		{ID: 1, UserID: testUser, InvoiceNumber: "INV-1", Type: entity.TransactionTypeTopUp, Description: entity.TopUpDescription, TotalAmount: 50000, CreatedOn: created},
	}

	t.Run("Without paging", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.ledger.EXPECT().History(mock.Anything, testUser, 0, (*int)(nil)).
			Return(&entity.HistoryPage{Offset: 0, Records: records}, nil).Once()

		w := f.do(http.MethodGet, "/transaction/history", "", true)
		assert.Equal(t, http.StatusOK, w.Code)
		_, message, data := envelope(t, w)
		assert.Equal(t, "Get History Berhasil", message)
		assert.JSONEq(t, `{"offset":0,"limit":null,"records":[
			{"invoice_number":"INV-2","transaction_type":"PAYMENT","description":"Listrik","total_amount":10000,"created_on":"2024-02-17T10:00:00Z"},
			{"invoice_number":"INV-1","transaction_type":"TOPUP","description":"Top Up balance","total_amount":50000,"created_on":"2024-02-17T10:00:00Z"}]}`, string(data))
	})

	t.Run("With paging", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		limit := 1
		f.ledger.EXPECT().History(mock.Anything, testUser, 1, mock.MatchedBy(func(l *int) bool { return l != nil && *l == 1 })).
			Return(&entity.HistoryPage{Offset: 1, Limit: &limit, Records: records[1:]}, nil).Once()

		w := f.do(http.MethodGet, "/transaction/history?offset=1&limit=1", "", true)
		assert.Equal(t, http.StatusOK, w.Code)
		_, _, data := envelope(t, w)
		assert.Contains(t, string(data), `"limit":1`)
		assert.Contains(t, string(data), `"INV-1"`)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		w := f.do(http.MethodGet, "/transaction/history?limit=0", "", true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		_, message, _ := envelope(t, w)
		assert.Equal(t, "Limit harus angka > 0", message)
	})

	t.Run("Storage failure is opaque", func(t *testing.T) {
		f := newFixture(t, UploadSettings{})
		f.ledger.EXPECT().History(mock.Anything, testUser, 0, (*int)(nil)).
			Return(nil, fmt.Errorf("%w: list transactions: timeout", errs.ErrDatabaseConnection)).Once()

		w := f.do(http.MethodGet, "/transaction/history", "", true)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"status":999,"message":"Internal Server Error","data":null}`, w.Body.String())
	})
}
