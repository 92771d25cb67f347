package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"
	"time"

	"paystand_bridge/internal/domain/entities"
	"paystand_bridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAuthenticationMissing = errors.New("authorization header missing")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrUpstreamUnavailable   = errors.New("paystand unavailable")
)

var pathParamPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Operation describes one Paystand endpoint proxied by this service.
//
// Path is relative to the Paystand base URL and may hold {field}
// placeholders, which are filled from the request body. Precondition runs
// before the upstream call and may veto it. Persist turns a successful call
// into the local writes that mirror it.
type Operation struct {
	Name         string
	Path         string
	RequireAuth  bool
	Renames      FieldRenames
	SuccessKey   string
	ResponseKey  string
	Precondition func(ctx context.Context, request map[string]interface{}) error
	Persist      func(request, payload map[string]interface{}) ([]entities.OutboxEntry, error)
}

// ProxyReply is what a relayed call hands back to the HTTP layer. An empty
// ResponseKey means the upstream body is relayed verbatim.
type ProxyReply struct {
	ResponseKey string
	Result      entities.UpstreamResult
}

// Relay runs the normalize / call / classify / persist sequence shared by
// every Paystand endpoint.
type Relay struct {
	client interfaces.IPaystandClient
	writer *LocalWriter
	outbox interfaces.IOutboxRepository
}

func NewRelay(client interfaces.IPaystandClient, writer *LocalWriter, outbox interfaces.IOutboxRepository) *Relay {
	return &Relay{client: client, writer: writer, outbox: outbox}
}

func (r *Relay) Execute(ctx context.Context, op Operation, authorization string, request map[string]interface{}) (ProxyReply, error) {
	log.Printf("[paystand][relay] %s start", op.Name)
	if op.RequireAuth && strings.TrimSpace(authorization) == "" {
		log.Printf("[paystand][relay] %s rejected: missing authorization", op.Name)
		return ProxyReply{}, ErrAuthenticationMissing
	}
	if r.client == nil {
		log.Printf("[paystand][relay] %s client not configured", op.Name)
		return ProxyReply{}, errors.New("paystand client not configured")
	}

	path, err := ResolvePath(op.Path, request)
	if err != nil {
		log.Printf("[paystand][relay] %s invalid path params err=%v", op.Name, err)
		return ProxyReply{}, err
	}

	if op.Precondition != nil {
		if err := op.Precondition(ctx, request); err != nil {
			log.Printf("[paystand][relay] %s precondition failed err=%v", op.Name, err)
			return ProxyReply{}, err
		}
	}

	payload := op.Renames.Apply(request)
	resp, err := r.client.Post(ctx, path, authorization, payload)
	if err != nil {
		log.Printf("[paystand][relay] %s upstream call failed err=%v", op.Name, err)
		return ProxyReply{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	result := ClassifyUpstreamResponse(resp, op.SuccessKey)
	switch result.Kind {
	case entities.UpstreamSuccess:
		log.Printf("[paystand][relay] %s success upstream_status=%d", op.Name, resp.StatusCode)
		if op.Persist != nil {
			r.persist(ctx, op, payload, result.Payload)
		}
	case entities.UpstreamFailure:
		log.Printf("[paystand][relay] %s rejected upstream_status=%d description=%q", op.Name, result.Status, result.Description)
	default:
		log.Printf("[paystand][relay] %s malformed upstream response upstream_status=%d body_len=%d", op.Name, resp.StatusCode, len(resp.Body))
	}

	return ProxyReply{ResponseKey: op.ResponseKey, Result: result}, nil
}

// persist applies the local writes of a successful call. A write that fails
// is parked in the outbox instead of failing the request, since Paystand has
// already committed its side.
func (r *Relay) persist(ctx context.Context, op Operation, request, payload map[string]interface{}) {
	// The caller may hang up as soon as Paystand answered; the mirror write
	// must still go through.
	ctx = context.WithoutCancel(ctx)

	writes, err := op.Persist(request, payload)
	if err != nil {
		log.Printf("[paystand][relay] %s could not derive local record err=%v", op.Name, err)
		return
	}

	for _, w := range writes {
		if w.ID == "" {
			w.ID = uuid.NewString()
		}
		if w.CreatedAt.IsZero() {
			w.CreatedAt = time.Now().UTC()
		}

		applyErr := errors.New("local writer not configured")
		if r.writer != nil {
			applyErr = r.writer.Apply(ctx, w)
		}
		if applyErr == nil {
			log.Printf("[paystand][relay] %s local write ok kind=%s record_id=%s", op.Name, w.Kind, w.RecordID)
			continue
		}

		log.Printf("[paystand][relay] %s local write failed kind=%s record_id=%s err=%v", op.Name, w.Kind, w.RecordID, applyErr)
		w.LastError = applyErr.Error()
		if r.outbox == nil {
			log.Printf("[paystand][relay] %s outbox not configured; local write lost kind=%s record_id=%s", op.Name, w.Kind, w.RecordID)
			continue
		}
		if err := r.outbox.Enqueue(ctx, w); err != nil {
			log.Printf("[paystand][relay] %s outbox enqueue failed; local write lost kind=%s record_id=%s err=%v", op.Name, w.Kind, w.RecordID, err)
			continue
		}
		log.Printf("[paystand][relay] %s local write parked in outbox entry_id=%s", op.Name, w.ID)
	}
}

// ResolvePath fills every {field} placeholder of template from request.
func ResolvePath(template string, request map[string]interface{}) (string, error) {
	var missing []string
	path := pathParamPattern.ReplaceAllStringFunc(template, func(m string) string {
		field := m[1 : len(m)-1]
		v := strings.TrimSpace(stringValue(request[field]))
		if v == "" {
			missing = append(missing, field)
			return m
		}
		return url.PathEscape(v)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: missing %s", ErrInvalidRequest, strings.Join(missing, ", "))
	}
	return path, nil
}
