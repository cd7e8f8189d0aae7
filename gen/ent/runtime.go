// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/invoice-extractor/db/ent/schema"
	"github.com/joseph-ayodele/invoice-extractor/gen/ent/invoice"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescFilePath is the schema descriptor for file_path field.
	invoiceDescFilePath := invoiceFields[1].Descriptor()
	// invoice.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	invoice.FilePathValidator = invoiceDescFilePath.Validators[0].(func(string) error)
	// invoiceDescVendorGstin is the schema descriptor for vendor_gstin field.
	invoiceDescVendorGstin := invoiceFields[3].Descriptor()
	// invoice.VendorGstinValidator is a validator for the "vendor_gstin" field. It is called by the builders before save.
	invoice.VendorGstinValidator = invoiceDescVendorGstin.Validators[0].(func(string) error)
	// invoiceDescCustomerGstin is the schema descriptor for customer_gstin field.
	invoiceDescCustomerGstin := invoiceFields[4].Descriptor()
	// invoice.CustomerGstinValidator is a validator for the "customer_gstin" field. It is called by the builders before save.
	invoice.CustomerGstinValidator = invoiceDescCustomerGstin.Validators[0].(func(string) error)
	// invoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	invoiceDescInvoiceNumber := invoiceFields[5].Descriptor()
	// invoice.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	invoice.InvoiceNumberValidator = invoiceDescInvoiceNumber.Validators[0].(func(string) error)
	// invoiceDescTier is the schema descriptor for tier field.
	invoiceDescTier := invoiceFields[9].Descriptor()
	// invoice.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	invoice.TierValidator = invoiceDescTier.Validators[0].(func(string) error)
	// invoiceDescStatus is the schema descriptor for status field.
	invoiceDescStatus := invoiceFields[10].Descriptor()
	// invoice.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	invoice.StatusValidator = invoiceDescStatus.Validators[0].(func(string) error)
	// invoiceDescExtractedAt is the schema descriptor for extracted_at field.
	invoiceDescExtractedAt := invoiceFields[11].Descriptor()
	// invoice.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	invoice.DefaultExtractedAt = invoiceDescExtractedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[12].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
}
