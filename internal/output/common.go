package output

// Field labels of a module record, in file order. The value column starts at
// LabelWidth; ANNOTATION_SOURCE is wider and sets its own.
const (
	FieldEntry            = "ENTRY"
	FieldName             = "NAME"
	FieldDefinition       = "DEFINITION"
	FieldOrthology        = "ORTHOLOGY"
	FieldClass            = "CLASS"
	FieldPathway          = "PATHWAY"
	FieldAnnotationSource = "ANNOTATION_SOURCE"

	LabelWidth       = 12
	SourceLabelWidth = len(FieldAnnotationSource) + 2

	Terminator = "///"
)

// SourceKOfam tags every annotation produced from the KEGG KO list.
const SourceKOfam = "KOfam"

// ClassPrefix precedes the compound type on the CLASS line.
const ClassPrefix = "User modules; Biosynthesis; "
