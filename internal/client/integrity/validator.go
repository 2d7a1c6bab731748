package integrity

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/maintkeeper/internal/client/storage"
	"github.com/iudanet/maintkeeper/internal/codec"
	"github.com/iudanet/maintkeeper/internal/models"
)

// DefaultHistoryLimit is the number of checks kept in the validation history
const DefaultHistoryLimit = 1000

// Status is the overall verdict of a validation run
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusDegraded Status = "degraded"
	StatusCritical Status = "critical"
)

// Report is the result of one ValidateStore run
type Report struct {
	StartedAt     time.Time               `json:"startedAt"`
	Collection    string                  `json:"collection"`
	OverallStatus Status                  `json:"overallStatus"`
	Checks        []models.IntegrityCheck `json:"checks"`
	TotalChecks   int                     `json:"totalChecks"`
	Passed        int                     `json:"passed"`
	Failed        int                     `json:"failed"`
	Warnings      int                     `json:"warnings"`
}

// Options configures a Validator
type Options struct {
	Now          func() time.Time
	Logger       *slog.Logger
	HistoryLimit int // HistoryLimit <= 0 выбирает DefaultHistoryLimit
}

// Validator runs schema, reference, constraint and checksum checks over a
// collection. Validation never mutates data; Repair is a separate call.
type Validator struct {
	items       storage.ItemStorage
	codec       *codec.Codec
	now         func() time.Time
	logger      *slog.Logger
	schemas     map[string]Schema
	references  map[string][]ReferenceRule
	constraints map[string][]ConstraintRule
	history     []models.IntegrityCheck
	limit       int
	mu          sync.RWMutex
	historyMu   sync.Mutex
}

// New creates a validator reading items through items
func New(items storage.ItemStorage, cdc *codec.Codec, opts Options) *Validator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = DefaultHistoryLimit
	}

	return &Validator{
		items:       items,
		codec:       cdc,
		now:         opts.Now,
		logger:      opts.Logger,
		limit:       opts.HistoryLimit,
		schemas:     make(map[string]Schema),
		references:  make(map[string][]ReferenceRule),
		constraints: make(map[string][]ConstraintRule),
	}
}

// RegisterSchema sets the schema of collection, replacing any previous one
func (v *Validator) RegisterSchema(collection string, schema Schema) error {
	fields := copyFields(schema.Fields)
	if err := normalizeSchema(fields); err != nil {
		return fmt.Errorf("invalid schema for %q: %w", collection, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.schemas[collection] = Schema{Fields: fields}
	return nil
}

// RegisterReferenceRules sets the reference rules of collection
func (v *Validator) RegisterReferenceRules(collection string, rules []ReferenceRule) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.references[collection] = append([]ReferenceRule(nil), rules...)
}

// RegisterConstraintRules sets the constraint rules of collection
func (v *Validator) RegisterConstraintRules(collection string, rules []ConstraintRule) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.constraints[collection] = append([]ConstraintRule(nil), rules...)
}

// decodedItem is an item prepared for checks
type decodedItem struct {
	item    *models.StoredItem
	value   any
	fields  map[string]any
	decoded bool
}

// ValidateStore checks every item of collection and records the checks in
// the history. The returned error reports only a failure to list items.
func (v *Validator) ValidateStore(ctx context.Context, collection string) (*Report, error) {
	items, err := v.items.ListItems(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	v.mu.RLock()
	schema, hasSchema := v.schemas[collection]
	references := v.references[collection]
	constraints := v.constraints[collection]
	v.mu.RUnlock()

	run := &validationRun{
		validator: v,
		ctx:       ctx,
		report: &Report{
			StartedAt:  v.now(),
			Collection: collection,
		},
		indexes: make(map[string]*referenceIndex),
	}

	for _, item := range items {
		d := v.decode(item)
		run.checkChecksum(d)

		if !d.decoded {
			continue
		}

		if hasSchema {
			run.checkSchema(d, schema)
		}
		for _, rule := range references {
			run.checkReference(d, rule)
		}
		for _, rule := range constraints {
			run.checkConstraint(d, rule)
		}
	}

	report := run.report
	report.TotalChecks = len(report.Checks)
	switch {
	case report.Failed > 0:
		report.OverallStatus = StatusCritical
	case report.Warnings > 0:
		report.OverallStatus = StatusDegraded
	default:
		report.OverallStatus = StatusHealthy
	}

	v.appendHistory(report.Checks)

	v.logger.Info("Validation completed",
		"collection", collection,
		"items", len(items),
		"passed", report.Passed,
		"failed", report.Failed,
		"warnings", report.Warnings,
		"status", report.OverallStatus)

	return report, nil
}

// History returns a copy of the accumulated checks, oldest first
func (v *Validator) History() []models.IntegrityCheck {
	v.historyMu.Lock()
	defer v.historyMu.Unlock()

	return append([]models.IntegrityCheck(nil), v.history...)
}

// ClearHistory drops the accumulated checks
func (v *Validator) ClearHistory() {
	v.historyMu.Lock()
	defer v.historyMu.Unlock()

	v.history = nil
}

// RecordCorruption appends a checksum warning detected outside a validation
// run, e.g. by a store read, to the history.
func (v *Validator) RecordCorruption(key models.ItemKey, stored, computed string, detectedAt time.Time) {
	if detectedAt.IsZero() {
		detectedAt = v.now()
	}

	v.appendHistory([]models.IntegrityCheck{{
		ID:         uuid.New().String(),
		Collection: key.Collection,
		ItemID:     key.ID,
		Type:       models.CheckTypeChecksum,
		Status:     models.CheckWarning,
		Message:    fmt.Sprintf("checksum mismatch on read: stored %s, computed %s", stored, computed),
		Timestamp:  detectedAt,
		Data:       map[string]string{"stored": stored, "computed": computed},
	}})
}

func (v *Validator) appendHistory(checks []models.IntegrityCheck) {
	v.historyMu.Lock()
	defer v.historyMu.Unlock()

	v.history = append(v.history, checks...)
	if over := len(v.history) - v.limit; over > 0 {
		// Отбрасываем самые старые проверки
		v.history = append([]models.IntegrityCheck(nil), v.history[over:]...)
	}
}

func (v *Validator) decode(item *models.StoredItem) *decodedItem {
	d := &decodedItem{item: item}

	value, err := v.codec.Decode(item.Payload, item.Compressed)
	if err != nil {
		return d
	}

	d.value = value
	d.fields, _ = value.(map[string]any)
	d.decoded = true
	return d
}

// referenceIndex holds the values of one field across a referenced collection
type referenceIndex struct {
	err    error
	values map[string]struct{}
}

// validationRun accumulates the checks of a single ValidateStore call
type validationRun struct {
	validator *Validator
	ctx       context.Context
	report    *Report
	indexes   map[string]*referenceIndex
}

func (r *validationRun) add(item *models.StoredItem, checkType models.CheckType, status models.CheckStatus, field, message string, data any) {
	check := models.IntegrityCheck{
		ID:         uuid.New().String(),
		Collection: item.Collection,
		ItemID:     item.ID,
		Field:      field,
		Type:       checkType,
		Status:     status,
		Message:    message,
		Timestamp:  r.validator.now(),
		Data:       data,
	}

	switch status {
	case models.CheckPassed:
		r.report.Passed++
	case models.CheckFailed:
		r.report.Failed++
	case models.CheckWarning:
		r.report.Warnings++
	}

	r.report.Checks = append(r.report.Checks, check)
}

func (r *validationRun) checkChecksum(d *decodedItem) {
	item := d.item

	raw, err := r.validator.codec.Raw(item.Payload, item.Compressed)
	if err != nil || !d.decoded {
		r.add(item, models.CheckTypeChecksum, models.CheckFailed, "", "payload cannot be decoded", nil)
		return
	}

	if item.Checksum == "" {
		r.add(item, models.CheckTypeChecksum, models.CheckWarning, "", "stored checksum is missing", nil)
		return
	}

	computed := codec.Checksum(raw)
	if computed != item.Checksum {
		r.add(item, models.CheckTypeChecksum, models.CheckFailed, "",
			fmt.Sprintf("checksum mismatch: stored %s, computed %s", item.Checksum, computed),
			map[string]string{"stored": item.Checksum, "computed": computed})
		return
	}

	r.add(item, models.CheckTypeChecksum, models.CheckPassed, "", "checksum matches", nil)
}

func (r *validationRun) checkSchema(d *decodedItem, schema Schema) {
	if d.fields == nil {
		r.add(d.item, models.CheckTypeSchema, models.CheckFailed, "",
			fmt.Sprintf("item must be an object, got %s", jsonKind(d.value)), nil)
		return
	}

	for i := range schema.Fields {
		f := &schema.Fields[i]
		value, ok := d.fields[f.Name]
		for _, res := range checkField(f, f.Name, value, ok) {
			status := models.CheckFailed
			if res.passed {
				status = models.CheckPassed
			}
			r.add(d.item, models.CheckTypeSchema, status, res.path, res.message, nil)
		}
	}
}

func (r *validationRun) checkReference(d *decodedItem, rule ReferenceRule) {
	value, ok := lookupPath(d.fields, rule.Field)
	if !ok || value == nil {
		if rule.Required {
			r.add(d.item, models.CheckTypeReference, models.CheckFailed, rule.Field,
				fmt.Sprintf("required reference %q is missing", rule.Field), nil)
		} else {
			r.add(d.item, models.CheckTypeReference, models.CheckPassed, rule.Field,
				fmt.Sprintf("optional reference %q is absent", rule.Field), nil)
		}
		return
	}

	index := r.index(rule.ReferencedCollection, rule.ReferencedField)
	if index.err != nil {
		r.add(d.item, models.CheckTypeReference, models.CheckWarning, rule.Field,
			fmt.Sprintf("reference lookup in %q failed: %v", rule.ReferencedCollection, index.err), nil)
		return
	}

	if _, found := index.values[referenceKey(value)]; !found {
		r.add(d.item, models.CheckTypeReference, models.CheckFailed, rule.Field,
			fmt.Sprintf("dangling reference %q=%v: no item in %q", rule.Field, value, rule.ReferencedCollection),
			map[string]any{"value": value})
		return
	}

	r.add(d.item, models.CheckTypeReference, models.CheckPassed, rule.Field,
		fmt.Sprintf("reference %q resolved", rule.Field), nil)
}

// index builds, once per run, the set of values of field in collection
func (r *validationRun) index(collection, field string) *referenceIndex {
	cacheKey := collection + "\x00" + field
	if idx, ok := r.indexes[cacheKey]; ok {
		return idx
	}

	idx := &referenceIndex{values: make(map[string]struct{})}
	r.indexes[cacheKey] = idx

	items, err := r.validator.items.ListItems(r.ctx, collection)
	if err != nil {
		idx.err = err
		return idx
	}

	for _, item := range items {
		if field == "" {
			idx.values[referenceKey(item.ID)] = struct{}{}
			continue
		}

		d := r.validator.decode(item)
		if value, ok := lookupPath(d.fields, field); ok && value != nil {
			idx.values[referenceKey(value)] = struct{}{}
		}
	}

	return idx
}

func (r *validationRun) checkConstraint(d *decodedItem, rule ConstraintRule) {
	value, _ := lookupPath(d.fields, rule.Field)
	if rule.Field == "" {
		value = d.value
	}

	ok, err := runConstraint(rule, value, d.fields)
	switch {
	case err != nil:
		r.add(d.item, models.CheckTypeConstraint, models.CheckWarning, rule.Field,
			fmt.Sprintf("constraint %q could not be evaluated: %v", rule.Name, err), nil)
	case !ok:
		message := rule.Message
		if message == "" {
			message = fmt.Sprintf("constraint %q violated", rule.Name)
		}
		r.add(d.item, models.CheckTypeConstraint, models.CheckFailed, rule.Field, message, nil)
	default:
		r.add(d.item, models.CheckTypeConstraint, models.CheckPassed, rule.Field,
			fmt.Sprintf("constraint %q satisfied", rule.Name), nil)
	}
}
