package sheetd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/smallbiznis/tindahan/internal/customer/domain"
	"github.com/smallbiznis/tindahan/internal/gateway"
	productdomain "github.com/smallbiznis/tindahan/internal/product/domain"
	transactiondomain "github.com/smallbiznis/tindahan/internal/transaction/domain"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Handler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{
		db:  db,
		log: log.Named("sheetd.handler"),
	}
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Snapshot)
	r.POST("/", h.Dispatch)
}

type envelope struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type snapshot struct {
	Products     []productdomain.Product         `json:"products"`
	Customers    []customerdomain.Customer       `json:"customers"`
	Transactions []transactiondomain.Transaction `json:"transactions"`
}

// Snapshot serves the full three-collection read. The contract has no
// filtering or paging.
func (h *Handler) Snapshot(c *gin.Context) {
	var products []ProductRow
	var customers []CustomerRow
	var transactions []TransactionRow

	if err := h.db.Find(&products).Error; err != nil {
		h.fail(c, err)
		return
	}
	if err := h.db.Find(&customers).Error; err != nil {
		h.fail(c, err)
		return
	}
	if err := h.db.Find(&transactions).Error; err != nil {
		h.fail(c, err)
		return
	}

	snap := snapshot{
		Products:     make([]productdomain.Product, 0, len(products)),
		Customers:    make([]customerdomain.Customer, 0, len(customers)),
		Transactions: make([]transactiondomain.Transaction, 0, len(transactions)),
	}
	for _, row := range products {
		snap.Products = append(snap.Products, row.toDomain())
	}
	for _, row := range customers {
		snap.Customers = append(snap.Customers, row.toDomain())
	}
	for _, row := range transactions {
		snap.Transactions = append(snap.Transactions, row.toDomain())
	}

	c.JSON(http.StatusOK, snap)
}

// Dispatch handles one POSTed action. Like the Apps Script web app it
// always answers HTTP 200; domain failures ride the status field.
func (h *Handler) Dispatch(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.errorOut(c, "could not read request body")
		return
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		h.errorOut(c, "malformed request")
		return
	}

	switch env.Action {
	case gateway.ActionLogin:
		h.login(c, env.Data)
	case gateway.ActionRegister:
		h.register(c, env.Data)
	case gateway.ActionResetDB:
		h.reset(c)
	case gateway.ActionAddProduct:
		h.addProduct(c, env.Data)
	case gateway.ActionUpdateProduct:
		h.updateProduct(c, env.Data)
	case gateway.ActionDeleteProduct:
		h.deleteByID(c, env.Data, &ProductRow{})
	case gateway.ActionAddCustomer:
		h.addCustomer(c, env.Data)
	case gateway.ActionUpdateCustomer:
		h.updateCustomer(c, env.Data)
	case gateway.ActionDeleteCustomer:
		h.deleteByID(c, env.Data, &CustomerRow{})
	case gateway.ActionAddTransaction:
		h.addTransaction(c, env.Data)
	default:
		h.errorOut(c, fmt.Sprintf("Unknown action: %s", env.Action))
	}
}

func (h *Handler) login(c *gin.Context, data json.RawMessage) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(data, &creds); err != nil {
		h.errorOut(c, "malformed credentials")
		return
	}

	var user UserRow
	err := h.db.First(&user, "username = ?", creds.Username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.errorOut(c, "Invalid username or password.")
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		h.errorOut(c, "Invalid username or password.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"user":   gin.H{"username": user.Username},
	})
}

func (h *Handler) register(c *gin.Context, data json.RawMessage) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(data, &creds); err != nil {
		h.errorOut(c, "malformed credentials")
		return
	}
	if creds.Username == "" || creds.Password == "" {
		h.errorOut(c, "Username and password are required.")
		return
	}

	var count int64
	if err := h.db.Model(&UserRow{}).Where("username = ?", creds.Username).Count(&count).Error; err != nil {
		h.fail(c, err)
		return
	}
	if count > 0 {
		h.errorOut(c, "Username already taken.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.db.Create(&UserRow{Username: creds.Username, PasswordHash: string(hash)}).Error; err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"user":   gin.H{"username": creds.Username},
	})
}

// reset clears the three data collections. Accounts survive a reset; only the
// data sheets are wiped.
func (h *Handler) reset(c *gin.Context) {
	for _, model := range []any{&ProductRow{}, &CustomerRow{}, &TransactionRow{}} {
		if err := h.db.Where("1 = 1").Delete(model).Error; err != nil {
			h.fail(c, err)
			return
		}
	}
	h.ok(c)
}

func (h *Handler) addProduct(c *gin.Context, data json.RawMessage) {
	var p productdomain.Product
	if err := json.Unmarshal(data, &p); err != nil {
		h.errorOut(c, "malformed product")
		return
	}
	if err := h.db.Create(productFromDomain(p)).Error; err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c)
}

func (h *Handler) updateProduct(c *gin.Context, data json.RawMessage) {
	var p productdomain.Product
	if err := json.Unmarshal(data, &p); err != nil {
		h.errorOut(c, "malformed product")
		return
	}
	if err := h.db.Save(productFromDomain(p)).Error; err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c)
}

func (h *Handler) addCustomer(c *gin.Context, data json.RawMessage) {
	var cust customerdomain.Customer
	if err := json.Unmarshal(data, &cust); err != nil {
		h.errorOut(c, "malformed customer")
		return
	}
	if err := h.db.Create(customerFromDomain(cust)).Error; err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c)
}

func (h *Handler) updateCustomer(c *gin.Context, data json.RawMessage) {
	var cust customerdomain.Customer
	if err := json.Unmarshal(data, &cust); err != nil {
		h.errorOut(c, "malformed customer")
		return
	}
	if err := h.db.Save(customerFromDomain(cust)).Error; err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c)
}

func (h *Handler) addTransaction(c *gin.Context, data json.RawMessage) {
	var t transactiondomain.Transaction
	if err := json.Unmarshal(data, &t); err != nil {
		h.errorOut(c, "malformed transaction")
		return
	}
	if err := h.db.Create(transactionFromDomain(t)).Error; err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c)
}

func (h *Handler) deleteByID(c *gin.Context, data json.RawMessage, model any) {
	var ref struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &ref); err != nil || ref.ID == "" {
		h.errorOut(c, "missing id")
		return
	}
	if err := h.db.Where("id = ?", ref.ID).Delete(model).Error; err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c)
}

func (h *Handler) ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) errorOut(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"status": "error", "message": message})
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.log.Error("storage failure", zap.Error(err))
	c.JSON(http.StatusOK, gin.H{"status": "error", "message": "storage failure"})
}
