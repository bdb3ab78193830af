package supplychain

// DataType enumerates the typed values a Property or PropertyValue can carry.
type DataType int

const (
	TypeUnset DataType = iota
	TypeBytes
	TypeBoolean
	TypeNumber
	TypeString
	TypeEnum
	TypeStruct
	TypeLocation
)

func (t DataType) String() string {
	switch t {
	case TypeBytes:
		return "BYTES"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeNumber:
		return "NUMBER"
	case TypeString:
		return "STRING"
	case TypeEnum:
		return "ENUM"
	case TypeStruct:
		return "STRUCT"
	case TypeLocation:
		return "LOCATION"
	default:
		return "TYPE_UNSET"
	}
}

// Location is a fixed-point latitude/longitude pair, stored as
// micro-degrees so the value is an exact integer rather than a float.
type Location struct {
	Latitude  int64
	Longitude int64
}

// PropertySchema describes one property a RecordType carries, including
// recursive STRUCT member schemas.
type PropertySchema struct {
	Name             string
	DataType         DataType
	Required         bool
	Delayed          bool
	NumberExponent   int32
	EnumOptions      []string
	StructProperties []PropertySchema
}

// Agent is a principal identified by its signing public key.
type Agent struct {
	PublicKey string
	Name      string
	Timestamp uint64
}

func (a Agent) identity() string { return a.PublicKey }

// RecordType is a schema defining which properties a Record carries.
type RecordType struct {
	Name       string
	Properties []PropertySchema
}

func (rt RecordType) identity() string { return rt.Name }

// AssociatedAgent is one entry in a Record's append-only owners/custodians
// history.
type AssociatedAgent struct {
	AgentID   string
	Timestamp uint64
}

// Record is a tracked physical item with an ordered owner/custodian history.
type Record struct {
	RecordID   string
	RecordType string
	Final      bool
	Owners     []AssociatedAgent
	Custodians []AssociatedAgent
}

func (r Record) identity() string { return r.RecordID }

// CurrentOwner returns the last entry of Owners, or the zero value and
// false if the record has no owners (which never happens for an existing
// record, but callers treat it defensively).
func (r Record) CurrentOwner() (AssociatedAgent, bool) {
	if len(r.Owners) == 0 {
		return AssociatedAgent{}, false
	}
	return r.Owners[len(r.Owners)-1], true
}

// CurrentCustodian returns the last entry of Custodians, or the zero value
// and false if the record has no custodians.
func (r Record) CurrentCustodian() (AssociatedAgent, bool) {
	if len(r.Custodians) == 0 {
		return AssociatedAgent{}, false
	}
	return r.Custodians[len(r.Custodians)-1], true
}

// Reporter is an Agent authorized (or previously authorized) to write a
// Property. Index is stable from insertion; only Authorized toggles.
type Reporter struct {
	PublicKey  string
	Authorized bool
	Index      uint32
}

// Property is a typed, append-history slot on a Record.
type Property struct {
	Name             string
	RecordID         string
	DataType         DataType
	CurrentPage      uint32
	Wrapped          bool
	Reporters        []Reporter
	NumberExponent   int32
	EnumOptions      []string
	StructProperties []PropertySchema
}

func (p Property) identity() string { return p.RecordID + "\x00" + p.Name }

// PropertyPage is a bounded bucket of reported values for a Property; pages
// form a 256-slot ring.
type PropertyPage struct {
	Name           string
	RecordID       string
	ReportedValues []ReportedValue
}

// PropertyValue is a typed value carried by an action payload: either a
// top-level update/create entry (Name names the Property) or, recursively,
// one member of a STRUCT value (Name names the struct member).
type PropertyValue struct {
	Name          string
	DataType      DataType
	BytesValue    []byte
	BooleanValue  bool
	NumberValue   int64
	StringValue   string
	EnumValue     string
	StructValues  []PropertyValue
	LocationValue Location
}

// ReportedValue is one entry appended to a PropertyPage: a PropertyValue
// resolved to its storage form (ENUM as index, not name) and tagged with who
// reported it and when.
type ReportedValue struct {
	Name          string
	ReporterIndex uint32
	Timestamp     uint64
	DataType      DataType
	BytesValue    []byte
	BooleanValue  bool
	NumberValue   int64
	StringValue   string
	EnumValue     uint32
	StructValues  []ReportedValue
	LocationValue Location
}

// ProposalRole is the kind of authorization a Proposal transfers.
type ProposalRole int

const (
	RoleUnspecified ProposalRole = iota
	RoleOwner
	RoleCustodian
	RoleReporter
)

func (r ProposalRole) String() string {
	switch r {
	case RoleOwner:
		return "OWNER"
	case RoleCustodian:
		return "CUSTODIAN"
	case RoleReporter:
		return "REPORTER"
	default:
		return "ROLE_UNSPECIFIED"
	}
}

// ProposalStatus is the proposal's position in its one-shot state machine:
// OPEN transitions exactly once to one terminal status.
type ProposalStatus int

const (
	StatusOpen ProposalStatus = iota
	StatusAccepted
	StatusRejected
	StatusCanceled
)

func (s ProposalStatus) String() string {
	switch s {
	case StatusAccepted:
		return "ACCEPTED"
	case StatusRejected:
		return "REJECTED"
	case StatusCanceled:
		return "CANCELED"
	default:
		return "OPEN"
	}
}

// Proposal is a pending role transfer awaiting acceptance.
type Proposal struct {
	RecordID       string
	Timestamp      uint64
	IssuingAgent   string
	ReceivingAgent string
	Role           ProposalRole
	Properties     []string
	Status         ProposalStatus
}
