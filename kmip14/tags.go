// Package kmip14 holds the KMIP 1.0-1.4 tag and enumeration value
// constants used by the message and client packages, named the way
// the OASIS KMIP specification names them. It has no behavior of its
// own; see ttlv for the wire codec and message for how these
// constants are assembled into request/response trees.
package kmip14

import "github.com/openkmip/kmipclient/ttlv"

// Envelope and batching tags.
const (
	TagRequestMessage       ttlv.Tag = 0x420078
	TagRequestHeader        ttlv.Tag = 0x420077
	TagProtocolVersion      ttlv.Tag = 0x420069
	TagProtocolVersionMajor ttlv.Tag = 0x42006A
	TagProtocolVersionMinor ttlv.Tag = 0x42006B
	TagMaximumResponseSize  ttlv.Tag = 0x420050
	TagTimeStamp            ttlv.Tag = 0x420092
	TagBatchCount           ttlv.Tag = 0x42000D
	TagBatchItem            ttlv.Tag = 0x42000F
	TagOperation            ttlv.Tag = 0x42005C
	TagUniqueBatchItemID    ttlv.Tag = 0x420093
	TagRequestPayload       ttlv.Tag = 0x420079

	TagResponseMessage ttlv.Tag = 0x42007B
	TagResponseHeader  ttlv.Tag = 0x42007A
	TagResponsePayload ttlv.Tag = 0x42007C
	TagResultStatus    ttlv.Tag = 0x42007F
	TagResultReason    ttlv.Tag = 0x42007E
	TagResultMessage   ttlv.Tag = 0x42007D
)

// Object identity and attribute tags.
const (
	TagUniqueIdentifier  ttlv.Tag = 0x420094
	TagObjectType        ttlv.Tag = 0x420057
	TagTemplateAttribute ttlv.Tag = 0x420091
	TagAttribute         ttlv.Tag = 0x420008
	TagAttributeIndex    ttlv.Tag = 0x420009
	TagAttributeName     ttlv.Tag = 0x42000A
	TagAttributeValue    ttlv.Tag = 0x42000B
	TagName              ttlv.Tag = 0x420053
	TagNameType          ttlv.Tag = 0x420054
	TagNameValue         ttlv.Tag = 0x420055
	TagObjectGroup       ttlv.Tag = 0x420051
)

// Cryptographic and key block tags.
const (
	TagCryptographicAlgorithm ttlv.Tag = 0x420028
	TagCryptographicLength    ttlv.Tag = 0x42002A
	TagCryptographicUsageMask ttlv.Tag = 0x42002C

	TagKeyBlock           ttlv.Tag = 0x420040
	TagKeyCompressionType ttlv.Tag = 0x420041
	TagKeyFormatType      ttlv.Tag = 0x420042
	TagKeyMaterial        ttlv.Tag = 0x420043
	TagKeyValue           ttlv.Tag = 0x420045
	TagKeyWrappingData    ttlv.Tag = 0x420046
)

// Managed object container tags.
const (
	TagSymmetricKey  ttlv.Tag = 0x42008F
	TagSecretData    ttlv.Tag = 0x420070
	TagSecretDataType ttlv.Tag = 0x420071
)

// Revocation tags.
const (
	TagRevocationReason         ttlv.Tag = 0x420022
	TagRevocationReasonCode     ttlv.Tag = 0x420021
	TagRevocationMessage        ttlv.Tag = 0x420023
	TagCompromiseOccurrenceDate ttlv.Tag = 0x420020
)

// Locate tags.
const (
	TagMaximumItems      ttlv.Tag = 0x42004A
	TagOffsetItems       ttlv.Tag = 0x420048
	TagStorageStatusMask ttlv.Tag = 0x420049
	TagGroupMemberOption ttlv.Tag = 0x42004C
	TagLocatedItems      ttlv.Tag = 0x42004D
)
