// Package irbis reads the textual IRBIS catalog export: logical records
// delimited by a "*****" sentinel line, "#tag:content" field lines, and
// 0x1F-separated subfields inside a field's content.
package irbis

const (
	// RecordSentinel terminates one logical record in the export stream.
	RecordSentinel = "*****"

	// SubfieldSep separates subfields within one field's content.
	SubfieldSep = '\x1f'

	// SubfieldSepAlt is the caret some exports carry in place of SubfieldSep.
	SubfieldSepAlt = '^'
)

// Field tags routed by the mapper.
const (
	TagTitle      = "200" // A title, E type, F edit statement
	TagEdition    = "205" // A edition statement
	TagPubInfo    = "210" // A, C, D publication info
	TagPhysDesc   = "215" // A extent, 1 other details
	TagSeries     = "225" // V volume, A series title
	TagUDC        = "675"
	TagAuthor     = "700"
	TagAltAuthor  = "701"
	TagLocalIndex = "903"
	TagCopy       = "910" // repeated, one or more holdings per value
	TagRecordType = "920"
	TagBBK        = "964"
)

// RecordTypeIBIS marks the records this pipeline accepts. Everything else
// in the export (readers, orders, service records) is silently skipped.
const RecordTypeIBIS = "IBIS"
