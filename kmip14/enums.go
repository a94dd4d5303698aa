package kmip14

// Operation identifies the KMIP operation a batch item carries.
type Operation int32

const (
	OperationCreate        Operation = 0x01
	OperationRegister      Operation = 0x03
	OperationLocate        Operation = 0x08
	OperationGet           Operation = 0x0A
	OperationGetAttributes Operation = 0x0B
	OperationActivate      Operation = 0x12
	OperationRevoke        Operation = 0x13
	OperationDestroy       Operation = 0x14
)

func (o Operation) String() string {
	switch o {
	case OperationCreate:
		return "Create"
	case OperationRegister:
		return "Register"
	case OperationLocate:
		return "Locate"
	case OperationGet:
		return "Get"
	case OperationGetAttributes:
		return "GetAttributes"
	case OperationActivate:
		return "Activate"
	case OperationRevoke:
		return "Revoke"
	case OperationDestroy:
		return "Destroy"
	default:
		return "Unknown"
	}
}

// ObjectType identifies the kind of managed object a ManagedObject
// structure carries.
type ObjectType int32

const (
	ObjectTypeCertificate        ObjectType = 0x01
	ObjectTypeSymmetricKey       ObjectType = 0x02
	ObjectTypePublicKey          ObjectType = 0x03
	ObjectTypePrivateKey         ObjectType = 0x04
	ObjectTypeSplitKey           ObjectType = 0x05
	ObjectTypeTemplate           ObjectType = 0x06
	ObjectTypeSecretData         ObjectType = 0x07
	ObjectTypeOpaqueObject       ObjectType = 0x08
	ObjectTypePGPKey             ObjectType = 0x09
	ObjectTypeCertificateRequest ObjectType = 0x0A
)

func (t ObjectType) String() string {
	switch t {
	case ObjectTypeCertificate:
		return "Certificate"
	case ObjectTypeSymmetricKey:
		return "SymmetricKey"
	case ObjectTypePublicKey:
		return "PublicKey"
	case ObjectTypePrivateKey:
		return "PrivateKey"
	case ObjectTypeSplitKey:
		return "SplitKey"
	case ObjectTypeTemplate:
		return "Template"
	case ObjectTypeSecretData:
		return "SecretData"
	case ObjectTypeOpaqueObject:
		return "OpaqueObject"
	case ObjectTypePGPKey:
		return "PGPKey"
	case ObjectTypeCertificateRequest:
		return "CertificateRequest"
	default:
		return "Unknown"
	}
}

// ResultStatus is the top-level outcome of a batch item.
type ResultStatus int32

const (
	ResultStatusSuccess          ResultStatus = 0x00
	ResultStatusOperationFailed  ResultStatus = 0x01
	ResultStatusOperationPending ResultStatus = 0x02
	ResultStatusOperationUndone  ResultStatus = 0x03
)

func (s ResultStatus) String() string {
	switch s {
	case ResultStatusSuccess:
		return "Success"
	case ResultStatusOperationFailed:
		return "OperationFailed"
	case ResultStatusOperationPending:
		return "OperationPending"
	case ResultStatusOperationUndone:
		return "OperationUndone"
	default:
		return "Unknown"
	}
}

// ResultReason further qualifies a non-Success ResultStatus.
type ResultReason int32

const (
	ResultReasonItemNotFound                  ResultReason = 0x01
	ResultReasonResponseTooLarge              ResultReason = 0x02
	ResultReasonAuthenticationNotSuccessful   ResultReason = 0x03
	ResultReasonInvalidMessage                ResultReason = 0x04
	ResultReasonOperationNotSupported         ResultReason = 0x05
	ResultReasonMissingData                   ResultReason = 0x06
	ResultReasonInvalidField                  ResultReason = 0x07
	ResultReasonFeatureNotSupported           ResultReason = 0x08
	ResultReasonOperationCanceledByRequester  ResultReason = 0x09
	ResultReasonCryptographicFailure          ResultReason = 0x0A
	ResultReasonIllegalOperation              ResultReason = 0x0B
	ResultReasonPermissionDenied              ResultReason = 0x0C
	ResultReasonObjectArchived                ResultReason = 0x0D
	ResultReasonIndexOutOfBounds              ResultReason = 0x0E
	ResultReasonKeyFormatTypeNotSupported     ResultReason = 0x10
	ResultReasonKeyCompressionTypeNotSupported ResultReason = 0x11
	ResultReasonGeneralFailure                 ResultReason = 0x100
)

func (r ResultReason) String() string {
	switch r {
	case ResultReasonItemNotFound:
		return "ItemNotFound"
	case ResultReasonResponseTooLarge:
		return "ResponseTooLarge"
	case ResultReasonAuthenticationNotSuccessful:
		return "AuthenticationNotSuccessful"
	case ResultReasonInvalidMessage:
		return "InvalidMessage"
	case ResultReasonOperationNotSupported:
		return "OperationNotSupported"
	case ResultReasonMissingData:
		return "MissingData"
	case ResultReasonInvalidField:
		return "InvalidField"
	case ResultReasonFeatureNotSupported:
		return "FeatureNotSupported"
	case ResultReasonOperationCanceledByRequester:
		return "OperationCanceledByRequester"
	case ResultReasonCryptographicFailure:
		return "CryptographicFailure"
	case ResultReasonIllegalOperation:
		return "IllegalOperation"
	case ResultReasonPermissionDenied:
		return "PermissionDenied"
	case ResultReasonObjectArchived:
		return "ObjectArchived"
	case ResultReasonIndexOutOfBounds:
		return "IndexOutOfBounds"
	case ResultReasonKeyFormatTypeNotSupported:
		return "KeyFormatTypeNotSupported"
	case ResultReasonKeyCompressionTypeNotSupported:
		return "KeyCompressionTypeNotSupported"
	case ResultReasonGeneralFailure:
		return "GeneralFailure"
	default:
		return "Unknown"
	}
}

// KeyFormatType identifies how KeyMaterial is encoded within a
// KeyBlock.
type KeyFormatType int32

const (
	KeyFormatTypeRaw    KeyFormatType = 0x01
	KeyFormatTypeOpaque KeyFormatType = 0x02
)

func (f KeyFormatType) String() string {
	switch f {
	case KeyFormatTypeRaw:
		return "Raw"
	case KeyFormatTypeOpaque:
		return "Opaque"
	default:
		return "Unknown"
	}
}

// CryptographicAlgorithm identifies the algorithm a symmetric key or
// secret data is used with.
type CryptographicAlgorithm int32

const (
	CryptographicAlgorithmAES CryptographicAlgorithm = 0x03
)

func (a CryptographicAlgorithm) String() string {
	switch a {
	case CryptographicAlgorithmAES:
		return "AES"
	default:
		return "Unknown"
	}
}

// CryptographicUsageMask bits, ORed together in the
// CryptographicUsageMask attribute.
const (
	CryptographicUsageMaskSign      int32 = 0x0001
	CryptographicUsageMaskVerify    int32 = 0x0002
	CryptographicUsageMaskEncrypt   int32 = 0x0004
	CryptographicUsageMaskDecrypt   int32 = 0x0008
	CryptographicUsageMaskWrapKey   int32 = 0x0010
	CryptographicUsageMaskUnwrapKey int32 = 0x0020
	CryptographicUsageMaskExport    int32 = 0x0040
)

// NameType identifies how a Name attribute's NameValue should be
// interpreted.
type NameType int32

const (
	NameTypeUninterpretedTextString NameType = 0x01
)

// RevocationReasonCode is carried inside the RevocationReason
// structure of a Revoke request.
type RevocationReasonCode int32

const (
	RevocationReasonCodeUnspecified          RevocationReasonCode = 0x01
	RevocationReasonCodeKeyCompromise        RevocationReasonCode = 0x02
	RevocationReasonCodeCACompromise         RevocationReasonCode = 0x03
	RevocationReasonCodeAffiliationChanged   RevocationReasonCode = 0x04
	RevocationReasonCodeSuperseded           RevocationReasonCode = 0x05
	RevocationReasonCodeCessationOfOperation RevocationReasonCode = 0x06
	RevocationReasonCodePrivilegeWithdrawn   RevocationReasonCode = 0x07
)

// GroupMemberOption qualifies how a Locate-by-group request should
// treat group membership freshness.
type GroupMemberOption int32

const (
	GroupMemberOptionFresh   GroupMemberOption = 0x01
	GroupMemberOptionDefault GroupMemberOption = 0x02
)

// State is the lifecycle state of a managed object, as returned by
// GetAttributes for the "State" attribute.
type State int32

const (
	StatePreActive            State = 0x01
	StateActive               State = 0x02
	StateDeactivated          State = 0x03
	StateCompromised          State = 0x04
	StateDestroyed            State = 0x05
	StateDestroyedCompromised State = 0x06
)

func (s State) String() string {
	switch s {
	case StatePreActive:
		return "PreActive"
	case StateActive:
		return "Active"
	case StateDeactivated:
		return "Deactivated"
	case StateCompromised:
		return "Compromised"
	case StateDestroyed:
		return "Destroyed"
	case StateDestroyedCompromised:
		return "Destroyed_Compromised"
	default:
		return "Unknown"
	}
}
