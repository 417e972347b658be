package entities

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Resource type codes embedded in ids of the form <prefix>-<code>-<suffix>.
const (
	TypeCodePayment       = "pay"
	TypeCodeAuthorization = "aut"
	TypeCodeCharge        = "chg"
	TypeCodeCancellation  = "cnl"
	TypeCodeShipment      = "shp"
)

var resourceIDPattern = regexp.MustCompile(`^([a-z]+)-([a-z]{3})-([A-Za-z0-9]+)$`)

// TransactionRef is the result of parsing a transaction URL. ParentID is only
// set for cancellations.
type TransactionRef struct {
	ParentID string
	ID       string
}

// ResourceTypeCode returns the 3-letter code of a resource id.
func ResourceTypeCode(id string) (string, bool) {
	m := resourceIDPattern.FindStringSubmatch(id)
	if m == nil {
		return "", false
	}
	return m[2], true
}

// IsResourceID reports whether id follows the <prefix>-<code>-<suffix> pattern.
func IsResourceID(id string) bool {
	return resourceIDPattern.MatchString(id)
}

// NewResourceID builds an id with the given prefix, type code and opaque suffix.
func NewResourceID(prefix, code, suffix string) string {
	return prefix + "-" + code + "-" + suffix
}

// ParseTransactionURL extracts the ids a transaction URL carries for the given
// transaction type. For cancellations the parent id is the authorization or
// charge id earlier in the path, and the own id is the last cancellation id.
func ParseTransactionURL(rawURL string, t TransactionType) (TransactionRef, error) {
	var ownCode, parentCode string
	switch t {
	case TransactionTypeAuthorize:
		ownCode = TypeCodeAuthorization
	case TransactionTypeCharge:
		ownCode = TypeCodeCharge
	case TransactionTypeShipment:
		ownCode = TypeCodeShipment
	case TransactionTypeCancelAuthorize:
		ownCode, parentCode = TypeCodeCancellation, TypeCodeAuthorization
	case TransactionTypeCancelCharge:
		ownCode, parentCode = TypeCodeCancellation, TypeCodeCharge
	default:
		return TransactionRef{}, fmt.Errorf("%w: %q", ErrUnknownTransactionType, t)
	}

	ids, err := resourceIDsFromURL(rawURL)
	if err != nil {
		return TransactionRef{}, err
	}

	var ref TransactionRef
	for _, id := range ids {
		code, _ := ResourceTypeCode(id)
		switch code {
		case ownCode:
			ref.ID = id
		case parentCode:
			if parentCode != "" && ref.ID == "" {
				ref.ParentID = id
			}
		}
	}

	if ref.ID == "" {
		return TransactionRef{}, fmt.Errorf("%w: no %s id in %q", ErrInvalidTransactionURL, ownCode, rawURL)
	}
	if parentCode != "" && ref.ParentID == "" {
		return TransactionRef{}, fmt.Errorf("%w: no %s parent id in %q", ErrInvalidTransactionURL, parentCode, rawURL)
	}
	return ref, nil
}

// resourceIDsFromURL returns the path segments that look like resource ids, in order.
func resourceIDsFromURL(rawURL string) ([]string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("%w: empty url", ErrInvalidTransactionURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransactionURL, err)
	}

	var ids []string
	for _, seg := range strings.Split(u.Path, "/") {
		if resourceIDPattern.MatchString(seg) {
			ids = append(ids, seg)
		}
	}
	return ids, nil
}
