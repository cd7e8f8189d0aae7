// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/invoice-extractor/gen/ent/invoice"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFilePath sets the "file_path" field.
func (_c *InvoiceCreate) SetFilePath(v string) *InvoiceCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *InvoiceCreate) SetVendorName(v string) *InvoiceCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableVendorName(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetVendorName(*v)
	}
	return _c
}

// SetVendorGstin sets the "vendor_gstin" field.
func (_c *InvoiceCreate) SetVendorGstin(v string) *InvoiceCreate {
	_c.mutation.SetVendorGstin(v)
	return _c
}

// SetNillableVendorGstin sets the "vendor_gstin" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableVendorGstin(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetVendorGstin(*v)
	}
	return _c
}

// SetCustomerGstin sets the "customer_gstin" field.
func (_c *InvoiceCreate) SetCustomerGstin(v string) *InvoiceCreate {
	_c.mutation.SetCustomerGstin(v)
	return _c
}

// SetNillableCustomerGstin sets the "customer_gstin" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCustomerGstin(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetCustomerGstin(*v)
	}
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *InvoiceCreate) SetInvoiceNumber(v string) *InvoiceCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableInvoiceNumber(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetInvoiceNumber(*v)
	}
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *InvoiceCreate) SetInvoiceDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableInvoiceDate(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetInvoiceDate(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *InvoiceCreate) SetTotalAmount(v float64) *InvoiceCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTotalAmount(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetLineItems sets the "line_items" field.
func (_c *InvoiceCreate) SetLineItems(v json.RawMessage) *InvoiceCreate {
	_c.mutation.SetLineItems(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *InvoiceCreate) SetTier(v string) *InvoiceCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *InvoiceCreate) SetStatus(v string) *InvoiceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *InvoiceCreate) SetExtractedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableExtractedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceCreate) SetUpdatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := invoice.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "Invoice.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := invoice.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_path": %w`, err)}
		}
	}
	if v, ok := _c.mutation.VendorGstin(); ok {
		if err := invoice.VendorGstinValidator(v); err != nil {
			return &ValidationError{Name: "vendor_gstin", err: fmt.Errorf(`ent: validator failed for field "Invoice.vendor_gstin": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CustomerGstin(); ok {
		if err := invoice.CustomerGstinValidator(v); err != nil {
			return &ValidationError{Name: "customer_gstin", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_gstin": %w`, err)}
		}
	}
	if v, ok := _c.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "Invoice.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := invoice.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Invoice.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Invoice.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "Invoice.extracted_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(invoice.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(invoice.FieldVendorName, field.TypeString, value)
		_node.VendorName = value
	}
	if value, ok := _c.mutation.VendorGstin(); ok {
		_spec.SetField(invoice.FieldVendorGstin, field.TypeString, value)
		_node.VendorGstin = &value
	}
	if value, ok := _c.mutation.CustomerGstin(); ok {
		_spec.SetField(invoice.FieldCustomerGstin, field.TypeString, value)
		_node.CustomerGstin = &value
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
		_node.InvoiceDate = &value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = &value
	}
	if value, ok := _c.mutation.LineItems(); ok {
		_spec.SetField(invoice.FieldLineItems, field.TypeJSON, value)
		_node.LineItems = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(invoice.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(invoice.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Invoice.Create().
//		SetFilePath(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvoiceUpsert) {
//			SetFilePath(v+v).
//		}).
//		Exec(ctx)
func (_c *InvoiceCreate) OnConflict(opts ...sql.ConflictOption) *InvoiceUpsertOne {
	_c.conflict = opts
	return &InvoiceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InvoiceCreate) OnConflictColumns(columns ...string) *InvoiceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InvoiceUpsertOne{
		create: _c,
	}
}

type (
	// InvoiceUpsertOne is the builder for "upsert"-ing
	//  one Invoice node.
	InvoiceUpsertOne struct {
		create *InvoiceCreate
	}

	// InvoiceUpsert is the "OnConflict" setter.
	InvoiceUpsert struct {
		*sql.UpdateSet
	}
)

// SetFilePath sets the "file_path" field.
func (u *InvoiceUpsert) SetFilePath(v string) *InvoiceUpsert {
	u.Set(invoice.FieldFilePath, v)
	return u
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateFilePath() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldFilePath)
	return u
}

// SetVendorName sets the "vendor_name" field.
func (u *InvoiceUpsert) SetVendorName(v string) *InvoiceUpsert {
	u.Set(invoice.FieldVendorName, v)
	return u
}

// UpdateVendorName sets the "vendor_name" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateVendorName() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldVendorName)
	return u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (u *InvoiceUpsert) ClearVendorName() *InvoiceUpsert {
	u.SetNull(invoice.FieldVendorName)
	return u
}

// SetVendorGstin sets the "vendor_gstin" field.
func (u *InvoiceUpsert) SetVendorGstin(v string) *InvoiceUpsert {
	u.Set(invoice.FieldVendorGstin, v)
	return u
}

// UpdateVendorGstin sets the "vendor_gstin" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateVendorGstin() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldVendorGstin)
	return u
}

// ClearVendorGstin clears the value of the "vendor_gstin" field.
func (u *InvoiceUpsert) ClearVendorGstin() *InvoiceUpsert {
	u.SetNull(invoice.FieldVendorGstin)
	return u
}

// SetCustomerGstin sets the "customer_gstin" field.
func (u *InvoiceUpsert) SetCustomerGstin(v string) *InvoiceUpsert {
	u.Set(invoice.FieldCustomerGstin, v)
	return u
}

// UpdateCustomerGstin sets the "customer_gstin" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateCustomerGstin() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldCustomerGstin)
	return u
}

// ClearCustomerGstin clears the value of the "customer_gstin" field.
func (u *InvoiceUpsert) ClearCustomerGstin() *InvoiceUpsert {
	u.SetNull(invoice.FieldCustomerGstin)
	return u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *InvoiceUpsert) SetInvoiceNumber(v string) *InvoiceUpsert {
	u.Set(invoice.FieldInvoiceNumber, v)
	return u
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateInvoiceNumber() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldInvoiceNumber)
	return u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (u *InvoiceUpsert) ClearInvoiceNumber() *InvoiceUpsert {
	u.SetNull(invoice.FieldInvoiceNumber)
	return u
}

// SetInvoiceDate sets the "invoice_date" field.
func (u *InvoiceUpsert) SetInvoiceDate(v time.Time) *InvoiceUpsert {
	u.Set(invoice.FieldInvoiceDate, v)
	return u
}

// UpdateInvoiceDate sets the "invoice_date" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateInvoiceDate() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldInvoiceDate)
	return u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (u *InvoiceUpsert) ClearInvoiceDate() *InvoiceUpsert {
	u.SetNull(invoice.FieldInvoiceDate)
	return u
}

// SetTotalAmount sets the "total_amount" field.
func (u *InvoiceUpsert) SetTotalAmount(v float64) *InvoiceUpsert {
	u.Set(invoice.FieldTotalAmount, v)
	return u
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateTotalAmount() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldTotalAmount)
	return u
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *InvoiceUpsert) AddTotalAmount(v float64) *InvoiceUpsert {
	u.Add(invoice.FieldTotalAmount, v)
	return u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (u *InvoiceUpsert) ClearTotalAmount() *InvoiceUpsert {
	u.SetNull(invoice.FieldTotalAmount)
	return u
}

// SetLineItems sets the "line_items" field.
func (u *InvoiceUpsert) SetLineItems(v json.RawMessage) *InvoiceUpsert {
	u.Set(invoice.FieldLineItems, v)
	return u
}

// UpdateLineItems sets the "line_items" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateLineItems() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldLineItems)
	return u
}

// ClearLineItems clears the value of the "line_items" field.
func (u *InvoiceUpsert) ClearLineItems() *InvoiceUpsert {
	u.SetNull(invoice.FieldLineItems)
	return u
}

// SetTier sets the "tier" field.
func (u *InvoiceUpsert) SetTier(v string) *InvoiceUpsert {
	u.Set(invoice.FieldTier, v)
	return u
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateTier() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldTier)
	return u
}

// SetStatus sets the "status" field.
func (u *InvoiceUpsert) SetStatus(v string) *InvoiceUpsert {
	u.Set(invoice.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateStatus() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldStatus)
	return u
}

// SetExtractedAt sets the "extracted_at" field.
func (u *InvoiceUpsert) SetExtractedAt(v time.Time) *InvoiceUpsert {
	u.Set(invoice.FieldExtractedAt, v)
	return u
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateExtractedAt() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldExtractedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsert) SetUpdatedAt(v time.Time) *InvoiceUpsert {
	u.Set(invoice.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateUpdatedAt() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(invoice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvoiceUpsertOne) UpdateNewValues() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(invoice.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InvoiceUpsertOne) Ignore() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvoiceUpsertOne) DoNothing() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvoiceCreate.OnConflict
// documentation for more info.
func (u *InvoiceUpsertOne) Update(set func(*InvoiceUpsert)) *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvoiceUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilePath sets the "file_path" field.
func (u *InvoiceUpsertOne) SetFilePath(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateFilePath() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateFilePath()
	})
}

// SetVendorName sets the "vendor_name" field.
func (u *InvoiceUpsertOne) SetVendorName(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetVendorName(v)
	})
}

// UpdateVendorName sets the "vendor_name" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateVendorName() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateVendorName()
	})
}

// ClearVendorName clears the value of the "vendor_name" field.
func (u *InvoiceUpsertOne) ClearVendorName() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearVendorName()
	})
}

// SetVendorGstin sets the "vendor_gstin" field.
func (u *InvoiceUpsertOne) SetVendorGstin(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetVendorGstin(v)
	})
}

// UpdateVendorGstin sets the "vendor_gstin" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateVendorGstin() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateVendorGstin()
	})
}

// ClearVendorGstin clears the value of the "vendor_gstin" field.
func (u *InvoiceUpsertOne) ClearVendorGstin() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearVendorGstin()
	})
}

// SetCustomerGstin sets the "customer_gstin" field.
func (u *InvoiceUpsertOne) SetCustomerGstin(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetCustomerGstin(v)
	})
}

// UpdateCustomerGstin sets the "customer_gstin" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateCustomerGstin() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateCustomerGstin()
	})
}

// ClearCustomerGstin clears the value of the "customer_gstin" field.
func (u *InvoiceUpsertOne) ClearCustomerGstin() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearCustomerGstin()
	})
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *InvoiceUpsertOne) SetInvoiceNumber(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetInvoiceNumber(v)
	})
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateInvoiceNumber() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateInvoiceNumber()
	})
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (u *InvoiceUpsertOne) ClearInvoiceNumber() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearInvoiceNumber()
	})
}

// SetInvoiceDate sets the "invoice_date" field.
func (u *InvoiceUpsertOne) SetInvoiceDate(v time.Time) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetInvoiceDate(v)
	})
}

// UpdateInvoiceDate sets the "invoice_date" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateInvoiceDate() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateInvoiceDate()
	})
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (u *InvoiceUpsertOne) ClearInvoiceDate() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearInvoiceDate()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *InvoiceUpsertOne) SetTotalAmount(v float64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *InvoiceUpsertOne) AddTotalAmount(v float64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateTotalAmount() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTotalAmount()
	})
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (u *InvoiceUpsertOne) ClearTotalAmount() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearTotalAmount()
	})
}

// SetLineItems sets the "line_items" field.
func (u *InvoiceUpsertOne) SetLineItems(v json.RawMessage) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetLineItems(v)
	})
}

// UpdateLineItems sets the "line_items" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateLineItems() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateLineItems()
	})
}

// ClearLineItems clears the value of the "line_items" field.
func (u *InvoiceUpsertOne) ClearLineItems() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearLineItems()
	})
}

// SetTier sets the "tier" field.
func (u *InvoiceUpsertOne) SetTier(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateTier() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTier()
	})
}

// SetStatus sets the "status" field.
func (u *InvoiceUpsertOne) SetStatus(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateStatus() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateStatus()
	})
}

// SetExtractedAt sets the "extracted_at" field.
func (u *InvoiceUpsertOne) SetExtractedAt(v time.Time) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetExtractedAt(v)
	})
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateExtractedAt() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateExtractedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsertOne) SetUpdatedAt(v time.Time) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateUpdatedAt() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InvoiceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InvoiceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvoiceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InvoiceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InvoiceUpsertOne.ID is not supported by MySQL driver. Use InvoiceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InvoiceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
	conflict []sql.ConflictOption
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Invoice.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvoiceUpsert) {
//			SetFilePath(v+v).
//		}).
//		Exec(ctx)
func (_c *InvoiceCreateBulk) OnConflict(opts ...sql.ConflictOption) *InvoiceUpsertBulk {
	_c.conflict = opts
	return &InvoiceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InvoiceCreateBulk) OnConflictColumns(columns ...string) *InvoiceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InvoiceUpsertBulk{
		create: _c,
	}
}

// InvoiceUpsertBulk is the builder for "upsert"-ing
// a bulk of Invoice nodes.
type InvoiceUpsertBulk struct {
	create *InvoiceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(invoice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvoiceUpsertBulk) UpdateNewValues() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(invoice.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InvoiceUpsertBulk) Ignore() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvoiceUpsertBulk) DoNothing() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvoiceCreateBulk.OnConflict
// documentation for more info.
func (u *InvoiceUpsertBulk) Update(set func(*InvoiceUpsert)) *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvoiceUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilePath sets the "file_path" field.
func (u *InvoiceUpsertBulk) SetFilePath(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateFilePath() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateFilePath()
	})
}

// SetVendorName sets the "vendor_name" field.
func (u *InvoiceUpsertBulk) SetVendorName(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetVendorName(v)
	})
}

// UpdateVendorName sets the "vendor_name" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateVendorName() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateVendorName()
	})
}

// ClearVendorName clears the value of the "vendor_name" field.
func (u *InvoiceUpsertBulk) ClearVendorName() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearVendorName()
	})
}

// SetVendorGstin sets the "vendor_gstin" field.
func (u *InvoiceUpsertBulk) SetVendorGstin(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetVendorGstin(v)
	})
}

// UpdateVendorGstin sets the "vendor_gstin" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateVendorGstin() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateVendorGstin()
	})
}

// ClearVendorGstin clears the value of the "vendor_gstin" field.
func (u *InvoiceUpsertBulk) ClearVendorGstin() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearVendorGstin()
	})
}

// SetCustomerGstin sets the "customer_gstin" field.
func (u *InvoiceUpsertBulk) SetCustomerGstin(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetCustomerGstin(v)
	})
}

// UpdateCustomerGstin sets the "customer_gstin" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateCustomerGstin() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateCustomerGstin()
	})
}

// ClearCustomerGstin clears the value of the "customer_gstin" field.
func (u *InvoiceUpsertBulk) ClearCustomerGstin() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearCustomerGstin()
	})
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *InvoiceUpsertBulk) SetInvoiceNumber(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetInvoiceNumber(v)
	})
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateInvoiceNumber() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateInvoiceNumber()
	})
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (u *InvoiceUpsertBulk) ClearInvoiceNumber() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearInvoiceNumber()
	})
}

// SetInvoiceDate sets the "invoice_date" field.
func (u *InvoiceUpsertBulk) SetInvoiceDate(v time.Time) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetInvoiceDate(v)
	})
}

// UpdateInvoiceDate sets the "invoice_date" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateInvoiceDate() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateInvoiceDate()
	})
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (u *InvoiceUpsertBulk) ClearInvoiceDate() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearInvoiceDate()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *InvoiceUpsertBulk) SetTotalAmount(v float64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *InvoiceUpsertBulk) AddTotalAmount(v float64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateTotalAmount() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTotalAmount()
	})
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (u *InvoiceUpsertBulk) ClearTotalAmount() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearTotalAmount()
	})
}

// SetLineItems sets the "line_items" field.
func (u *InvoiceUpsertBulk) SetLineItems(v json.RawMessage) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetLineItems(v)
	})
}

// UpdateLineItems sets the "line_items" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateLineItems() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateLineItems()
	})
}

// ClearLineItems clears the value of the "line_items" field.
func (u *InvoiceUpsertBulk) ClearLineItems() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearLineItems()
	})
}

// SetTier sets the "tier" field.
func (u *InvoiceUpsertBulk) SetTier(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateTier() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTier()
	})
}

// SetStatus sets the "status" field.
func (u *InvoiceUpsertBulk) SetStatus(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateStatus() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateStatus()
	})
}

// SetExtractedAt sets the "extracted_at" field.
func (u *InvoiceUpsertBulk) SetExtractedAt(v time.Time) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetExtractedAt(v)
	})
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateExtractedAt() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateExtractedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsertBulk) SetUpdatedAt(v time.Time) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateUpdatedAt() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InvoiceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InvoiceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InvoiceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvoiceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
