// Package notifier implementa las alertas de stock bajo y vencimiento de
// lotes como máquinas de latch de dos estados, para que cada transición de
// umbral genere a lo sumo una alerta.
//
// Latch de stock bajo (Product.LowStockNotified):
//
//	NOT_NOTIFIED --stock < reorder--> NOTIFIED   (envía alerta)
//	NOTIFIED --stock >= reorder--> NOT_NOTIFIED  (sin alerta)
//
// Latch de vencimiento (StockEntry.ExpiryNotified): de una sola vía, una vez
// notificado el lote nunca se reenvía, ni siquiera al editarlo.
//
// La entrega del correo es best-effort: una falla del transporte se registra
// y se traga, y el latch se actualiza igual tras el intento. Las operaciones
// del libro nunca fallan por una alerta no entregada.
package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/repository"
	"github.com/SarahAbdulmajeed/Stocker/pkg/logger"
)

// Mailer puerto del transporte de alertas.
type Mailer interface {
	Send(to []string, subject, body string) error
}

// Config del notificador (struct explícito, inyectado en la construcción).
type Config struct {
	ExpiryAlertDays int // ventana de alerta de vencimiento en días; <= 0 usa 7
	ManagerEmail    string
}

// Notifier evalúa los umbrales y emite las alertas.
type Notifier struct {
	cfg         Config
	mailer      Mailer
	productRepo repository.ProductRepository
	entryRepo   repository.StockEntryRepository
	log         *logger.Logger

	now func() time.Time // inyectable en tests
}

// New construye el notificador.
func New(
	cfg Config,
	mailer Mailer,
	productRepo repository.ProductRepository,
	entryRepo repository.StockEntryRepository,
	log *logger.Logger,
) *Notifier {
	if cfg.ExpiryAlertDays <= 0 {
		cfg.ExpiryAlertDays = 7
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Notifier{
		cfg:         cfg,
		mailer:      mailer,
		productRepo: productRepo,
		entryRepo:   entryRepo,
		log:         log,
		now:         time.Now,
	}
}

// WithClock fija el reloj del notificador. Solo para tests.
func (n *Notifier) WithClock(now func() time.Time) *Notifier {
	n.now = now
	return n
}

// CheckLowStock evalúa el latch de stock bajo de un producto. Se invoca
// después de cada recepción o retiro que lo afecte. Nunca devuelve error:
// las alertas no abortan la operación que las disparó.
func (n *Notifier) CheckLowStock(ctx context.Context, product *entity.Product) {
	if product == nil {
		return
	}
	onHand, err := n.entryRepo.SumQuantityByProduct(product.ID)
	if err != nil {
		n.log.Warn().Err(err).Str("product_id", product.ID).Msg("no se pudo calcular el stock disponible")
		return
	}

	breach := onHand < product.ReorderLevel
	switch {
	case breach && !product.LowStockNotified:
		subject := fmt.Sprintf("Stock bajo: %s", product.Name)
		body := fmt.Sprintf(
			"El producto %s (SKU %s) tiene %d unidades disponibles, por debajo del nivel de reorden (%d).",
			product.Name, product.SKU, onHand, product.ReorderLevel,
		)
		n.send(subject, body)
		// El latch se actualiza aunque el envío haya fallado.
		if err := n.productRepo.SetLowStockNotified(product.ID, true); err != nil {
			n.log.Error().Err(err).Str("product_id", product.ID).Msg("actualizar latch de stock bajo")
			return
		}
		product.LowStockNotified = true

	case !breach && product.LowStockNotified:
		// La condición se despejó: se resetea el latch sin enviar alerta.
		if err := n.productRepo.SetLowStockNotified(product.ID, false); err != nil {
			n.log.Error().Err(err).Str("product_id", product.ID).Msg("limpiar latch de stock bajo")
			return
		}
		product.LowStockNotified = false
	}
}

// CheckExpiry evalúa el latch de vencimiento de un lote. Se invoca al crear
// o editar el lote. El latch es de una vía: una vez notificado no se reenvía.
func (n *Notifier) CheckExpiry(ctx context.Context, entry *entity.StockEntry, productName string) {
	if entry == nil || entry.ExpiryNotified || entry.Quantity <= 0 || entry.ExpiryDate == nil {
		return
	}

	today := dateOnly(n.now())
	limit := today.AddDate(0, 0, n.cfg.ExpiryAlertDays)
	expiry := dateOnly(*entry.ExpiryDate)
	if expiry.After(limit) {
		return
	}

	subject := fmt.Sprintf("Lote por vencer: %s", productName)
	body := fmt.Sprintf(
		"El lote %s de %s vence el %s y aún tiene %d unidades disponibles.",
		entry.ID, productName, expiry.Format("2006-01-02"), entry.Quantity,
	)
	n.send(subject, body)
	// El latch se actualiza aunque el envío haya fallado.
	if err := n.entryRepo.SetExpiryNotified(entry.ID, true); err != nil {
		n.log.Error().Err(err).Str("entry_id", entry.ID).Msg("actualizar latch de vencimiento")
		return
	}
	entry.ExpiryNotified = true
}

// send entrega la alerta al destinatario configurado. La falla se registra
// y se traga; el caller continúa como si nada.
func (n *Notifier) send(subject, body string) {
	if n.mailer == nil || n.cfg.ManagerEmail == "" {
		n.log.Debug().Str("subject", subject).Msg("alerta descartada: transporte sin configurar")
		return
	}
	if err := n.mailer.Send([]string{n.cfg.ManagerEmail}, subject, body); err != nil {
		n.log.Warn().Err(err).Str("subject", subject).Msg("falla al entregar alerta")
		return
	}
	n.log.Info().Str("subject", subject).Msg("alerta enviada")
}

// dateOnly trunca un instante a su fecha (medianoche UTC del mismo día local).
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
