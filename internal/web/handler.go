// internal/web/handler.go
//
// Payable – HTTP surface for the capture workflow.
//
// Context
//   The browser form does its own keystroke filtering and blur checks; the
//   server re-runs the full validation chain because clients lie.  Each
//   POST gets a fresh form controller seeded with the decoded payload, so
//   the submission travels the exact same state machine an embedded host
//   would drive: validate → submit → resolve.  The response carries the
//   resolved status phase, the user-facing message, and the assigned
//   identifier on success.
//
// Routes
//   POST /api/payables          – validate and submit one payable
//   GET  /api/payables/options  – closed option sets for selects
//   GET  /healthz               – liveness probe
//
//------------------------------------------------------------------------------

package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/payable/internal/form"
	"github.com/yanizio/payable/internal/gateway"
	"github.com/yanizio/payable/internal/metrics"
	"github.com/yanizio/payable/internal/middleware"
	"github.com/yanizio/payable/internal/notify"
	"github.com/yanizio/payable/internal/payable"
)

// Handler wires the capture workflow to HTTP.
type Handler struct {
	gw  gateway.Gateway
	pub *notify.Publisher
	log *zap.SugaredLogger
}

// New returns a Handler backed by the given gateway.  pub may be nil.
func New(gw gateway.Gateway, pub *notify.Publisher, log *zap.SugaredLogger) *Handler {
	if log == nil {
		log = zap.S()
	}
	return &Handler{gw: gw, pub: pub, log: log}
}

// Routes builds the chi router for the service.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Security)
	r.Use(middleware.Audit(h.log))

	r.Route("/api/payables", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/options", h.options)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

// submitResponse is the JSON body for every submission outcome.
type submitResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	PayableID int64  `json:"payableId,omitempty"`
}

// create validates and submits one payable.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var rec payable.Record
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, submitResponse{
			Status:  form.PhaseFailed.String(),
			Message: "Malformed request body.",
		})
		return
	}

	// Selects are closed sets; a value outside them never came from the
	// form.  An empty status still flows through so the controller can
	// answer with its required-fields message.
	if !payable.ValidPaymentMethod(rec.PaymentMethod) ||
		(rec.PaymentStatus != "" && !payable.ValidPaymentStatus(rec.PaymentStatus)) {
		writeJSON(w, http.StatusBadRequest, submitResponse{
			Status:  form.PhaseFailed.String(),
			Message: "Unknown payment option.",
		})
		return
	}

	metrics.SubmissionsTotal.Inc()

	var assigned int64
	sub := form.SubmitterFunc(func(ctx context.Context, in payable.Record) error {
		start := time.Now()
		id, err := h.gw.Create(ctx, in)
		metrics.GatewayLatency.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.GatewayFailuresTotal.Inc()
			return err
		}
		assigned = id
		metrics.AcceptedTotal.Inc()
		h.log.Infow("payable accepted", "id", id, "vendor", in.VendorName, "amount", in.Amount)
		h.pub.PayableAccepted(id, in)
		return nil
	})

	ctrl := form.New(sub, form.WithDraft(rec.Draft()), form.WithLogger(h.log))
	err := ctrl.Submit(r.Context())
	st := ctrl.Status()

	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, submitResponse{
			Status:    st.Phase.String(),
			Message:   st.Message,
			PayableID: assigned,
		})
	case isValidation(err):
		metrics.SubmissionsRejectedTotal.Inc()
		writeJSON(w, http.StatusUnprocessableEntity, submitResponse{
			Status:  st.Phase.String(),
			Message: st.Message,
		})
	default:
		writeJSON(w, http.StatusBadGateway, submitResponse{
			Status:  st.Phase.String(),
			Message: st.Message,
		})
	}
}

// options returns the closed option sets for the form's select controls.
func (h *Handler) options(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"paymentMethods":  payable.PaymentMethods(),
		"paymentStatuses": payable.PaymentStatuses(),
	})
}

func isValidation(err error) bool {
	var ve *form.ValidationError
	return errors.As(err, &ve)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
