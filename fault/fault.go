// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrBlockNotFound                = NotFoundError("block not found")
	ErrBlockOutOfSequence           = ProcessError("block out of sequence")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrCheckpointMismatch           = ProcessError("checkpoint does not match ledger contents")
	ErrChecksumMismatch             = InvalidError("checksum mismatch")
	ErrConfigurationNotTable        = InvalidError("configuration file must return a table")
	ErrDatabaseVersion              = ProcessError("incompatible database version")
	ErrDecryptFailed                = InvalidError("value decryption failed")
	ErrDuplicateTransaction         = ExistsError("duplicate transaction in block")
	ErrInvalidAddress               = InvalidError("invalid wallet address")
	ErrInvalidBase32z               = InvalidError("value is not z-base-32")
	ErrInvalidChain                 = InvalidError("invalid chain")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidEncryptedValueLength  = LengthError("encrypted value has wrong length")
	ErrInvalidHex                   = InvalidError("value is not hexadecimal")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidLength                = LengthError("invalid length")
	ErrInvalidName                  = InvalidError("name contains invalid characters")
	ErrInvalidNameLength            = LengthError("name length is invalid")
	ErrInvalidPrivateKey            = LengthError("private key length is invalid")
	ErrInvalidPublicKey             = LengthError("public key length is invalid")
	ErrInvalidSessionPrefix         = InvalidError("session key must begin with 05")
	ErrInvalidSignature             = InvalidError("invalid signature")
	ErrInvalidType                  = InvalidError("unrecognised mapping type")
	ErrInvalidValueLength           = LengthError("value has wrong length")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMappingExpired               = InvalidError("mapping has expired")
	ErrMappingNotFound              = NotFoundError("mapping not found")
	ErrMissingEntry                 = RecordError("transaction has no name system entry")
	ErrMissingNetwork               = InvalidError("missing network (chain) setting")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNameAlreadyRegistered        = ExistsError("name already registered")
	ErrNameReserved                 = InvalidError("name is reserved")
	ErrNameSystemNotActive          = InvalidError("name system not active at this version")
	ErrNotDigest                    = LengthError("not a 32 byte digest")
	ErrNotEntryPack                 = RecordError("malformed name system entry")
	ErrNotMappingPack               = RecordError("malformed mapping record")
	ErrNotSettingsPack              = RecordError("malformed settings record")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrOwnerNotFound                = NotFoundError("owner not found")
	ErrPrevTxIdMismatch             = InvalidError("previous txid does not match current mapping")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrTransactionInUse             = ProcessError("storage transaction already in use")
	ErrTransactionNotInUse          = ProcessError("storage transaction not in use")
	ErrTxIdMismatch                 = InvalidError("transaction id does not match its content")
	ErrTypeNotAllowed               = InvalidError("mapping type not allowed")
	ErrValueTooLong                 = LengthError("value too long")
	ErrValueTooShort                = LengthError("value too short")
	ErrWrongNetworkForAddress       = InvalidError("wrong network for address")
	ErrZeroNameHash                 = InvalidError("name hash is zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

// StateFailure - an error met while reading ledger state during
// validation; as a ProcessError it is never taken for a rejected entry
func StateFailure(e error) error {
	if nil == e {
		return nil
	}
	return ProcessError("ledger state: " + e.Error())
}

// IsValidationFailure - true for any class that rejects an entry
// without implying damaged state
func IsValidationFailure(e error) bool {
	return IsErrExists(e) || IsErrInvalid(e) || IsErrLength(e) || IsErrNotFound(e) || IsErrRecord(e)
}
