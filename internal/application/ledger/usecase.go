package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/dto"
	"github.com/SarahAbdulmajeed/Stocker/internal/application/notifier"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/repository"
	"github.com/SarahAbdulmajeed/Stocker/pkg/logger"
)

const dateLayout = "2006-01-02"

// UseCase registra recepciones (lotes) y retiros del libro de inventario.
// Los retiros se ejecutan de forma transaccional con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback; las mutaciones disparan la
// re-evaluación de alertas en el notificador después del commit.
type UseCase struct {
	txRunner       TxRunner
	productRepo    repository.ProductRepository
	supplierRepo   repository.SupplierRepository
	entryRepo      repository.StockEntryRepository
	withdrawalRepo repository.StockWithdrawalRepository
	notifier       *notifier.Notifier
	log            *logger.Logger
}

// NewUseCase construye el caso de uso del libro.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	entryRepo repository.StockEntryRepository,
	withdrawalRepo repository.StockWithdrawalRepository,
	n *notifier.Notifier,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		txRunner:       txRunner,
		productRepo:    productRepo,
		supplierRepo:   supplierRepo,
		entryRepo:      entryRepo,
		withdrawalRepo: withdrawalRepo,
		notifier:       n,
		log:            log,
	}
}

// RegisterEntry registra una recepción: crea un lote nuevo con
// initial_quantity = quantity. Falla con ErrInvalidInput si la cantidad no es
// positiva o faltan referencias; con ErrNotFound si producto o proveedor no
// existen. Tras crear el lote re-evalúa vencimiento y stock bajo (una
// recepción puede despejar el latch de stock bajo).
func (uc *UseCase) RegisterEntry(ctx context.Context, in dto.CreateStockEntryRequest) (*dto.StockEntryResponse, error) {
	if in.Quantity <= 0 || in.ProductID == "" || in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	received := dateOnly(now)
	if in.ReceivedDate != "" {
		received, err = time.Parse(dateLayout, in.ReceivedDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	var expiry *time.Time
	if in.ExpiryDate != "" {
		d, err := time.Parse(dateLayout, in.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expiry = &d
	}

	entry := &entity.StockEntry{
		ID:              uuid.New().String(),
		ProductID:       in.ProductID,
		SupplierID:      in.SupplierID,
		InitialQuantity: in.Quantity,
		Quantity:        in.Quantity,
		UnitCost:        in.UnitCost,
		ExpiryDate:      expiry,
		ReceivedDate:    received,
		ExpiryNotified:  false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.entryRepo.Create(entry); err != nil {
		return nil, err
	}

	uc.notifier.CheckExpiry(ctx, entry, product.Name)
	uc.notifier.CheckLowStock(ctx, product)

	return toEntryResponse(entry), nil
}

// Withdraw registra un retiro contra un lote: verifica y decrementa el saldo
// del lote de forma atómica (fila bloqueada dentro de la transacción) y crea
// la fila del retiro. Falla con ErrInsufficientStock si q <= 0 o q excede el
// saldo del lote, sin efecto parcial. Tras el commit re-evalúa stock bajo.
func (uc *UseCase) Withdraw(ctx context.Context, entryID string, in dto.CreateWithdrawalRequest, userID string) (*dto.WithdrawalResponse, error) {
	if entryID == "" || !entity.ValidWithdrawalReason(in.Reason) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInsufficientStock
	}

	var (
		created   *entity.StockWithdrawal
		productID string
	)
	err := uc.txRunner.Run(ctx, func(
		entryRepo repository.StockEntryRepository,
		withdrawalRepo repository.StockWithdrawalRepository,
	) error {
		entry, err := entryRepo.GetForUpdate(entryID)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		if in.Quantity > entry.Quantity {
			return domain.ErrInsufficientStock
		}
		if err := entryRepo.UpdateQuantity(entry.ID, entry.Quantity-in.Quantity); err != nil {
			return err
		}
		w := &entity.StockWithdrawal{
			ID:           uuid.New().String(),
			StockEntryID: entry.ID,
			ProductID:    entry.ProductID,
			Quantity:     in.Quantity,
			Reason:       in.Reason,
			Notes:        in.Notes,
			CreatedAt:    time.Now(),
			CreatedBy:    userID,
		}
		if err := withdrawalRepo.Create(w); err != nil {
			return err
		}
		created = w
		productID = entry.ProductID
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Fuera de la transacción: la alerta es fire-and-forget. Si la relectura
	// del producto falla, el retiro ya está confirmado; se deja constancia de
	// que la re-evaluación de stock bajo quedó pendiente.
	product, err := uc.productRepo.GetByID(productID)
	switch {
	case err != nil:
		uc.log.Warn().Err(err).
			Str("product_id", productID).
			Msg("retiro confirmado pero no se pudo re-evaluar stock bajo")
	case product != nil:
		uc.notifier.CheckLowStock(ctx, product)
	}

	return toWithdrawalResponse(created), nil
}

// UpdateEntry edita los campos editables de un lote (proveedor, costo,
// fechas) y re-evalúa el latch de vencimiento. initial_quantity y quantity
// nunca se tocan por esta vía.
func (uc *UseCase) UpdateEntry(ctx context.Context, id string, in dto.UpdateStockEntryRequest) (*dto.StockEntryResponse, error) {
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}

	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		entry.SupplierID = *in.SupplierID
	}
	if in.UnitCost != nil {
		if in.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		entry.UnitCost = *in.UnitCost
	}
	if in.ExpiryDate != nil {
		if *in.ExpiryDate == "" {
			entry.ExpiryDate = nil
		} else {
			d, err := time.Parse(dateLayout, *in.ExpiryDate)
			if err != nil {
				return nil, domain.ErrInvalidInput
			}
			entry.ExpiryDate = &d
		}
	}
	if in.ReceivedDate != nil {
		d, err := time.Parse(dateLayout, *in.ReceivedDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		entry.ReceivedDate = d
	}
	entry.UpdatedAt = time.Now()

	if err := uc.entryRepo.Update(entry); err != nil {
		return nil, err
	}

	productName := entry.ProductID
	if product, err := uc.productRepo.GetByID(entry.ProductID); err == nil && product != nil {
		productName = product.Name
	}
	uc.notifier.CheckExpiry(ctx, entry, productName)

	return toEntryResponse(entry), nil
}

// GetEntry devuelve un lote por ID.
func (uc *UseCase) GetEntry(ctx context.Context, id string) (*dto.StockEntryResponse, error) {
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return toEntryResponse(entry), nil
}

// ListEntries lista lotes con paginación.
func (uc *UseCase) ListEntries(ctx context.Context, limit, offset int) ([]*dto.StockEntryResponse, error) {
	entries, err := uc.entryRepo.List(normalizeLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out, nil
}

// DeleteEntry elimina un lote (operación administrativa). Falla con ErrInUse
// si el lote tiene retiros registrados.
func (uc *UseCase) DeleteEntry(ctx context.Context, id string) error {
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return uc.entryRepo.Delete(id)
}

// ListWithdrawals lista todos los retiros con paginación.
func (uc *UseCase) ListWithdrawals(ctx context.Context, limit, offset int) ([]*dto.WithdrawalResponse, error) {
	ws, err := uc.withdrawalRepo.List(normalizeLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WithdrawalResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, toWithdrawalResponse(w))
	}
	return out, nil
}

// ListEntryWithdrawals lista los retiros de un lote.
func (uc *UseCase) ListEntryWithdrawals(ctx context.Context, entryID string) ([]*dto.WithdrawalResponse, error) {
	entry, err := uc.entryRepo.GetByID(entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	ws, err := uc.withdrawalRepo.ListByEntry(entryID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WithdrawalResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, toWithdrawalResponse(w))
	}
	return out, nil
}

func toEntryResponse(e *entity.StockEntry) *dto.StockEntryResponse {
	resp := &dto.StockEntryResponse{
		ID:              e.ID,
		ProductID:       e.ProductID,
		SupplierID:      e.SupplierID,
		InitialQuantity: e.InitialQuantity,
		Quantity:        e.Quantity,
		UnitCost:        e.UnitCost,
		ReceivedDate:    e.ReceivedDate.Format(dateLayout),
		ExpiryNotified:  e.ExpiryNotified,
		CreatedAt:       e.CreatedAt,
	}
	if e.ExpiryDate != nil {
		resp.ExpiryDate = e.ExpiryDate.Format(dateLayout)
	}
	return resp
}

func toWithdrawalResponse(w *entity.StockWithdrawal) *dto.WithdrawalResponse {
	return &dto.WithdrawalResponse{
		ID:           w.ID,
		StockEntryID: w.StockEntryID,
		ProductID:    w.ProductID,
		Quantity:     w.Quantity,
		Reason:       w.Reason,
		Notes:        w.Notes,
		CreatedAt:    w.CreatedAt,
		CreatedBy:    w.CreatedBy,
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return 50
	}
	return limit
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
