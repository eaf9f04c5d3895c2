package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex plan_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateShortIDWithPrefix returns a short human-facing ID with a prefix,
// capped at 12 characters, e.g. `PO-XY12A8Q`. Used for document numbers
// shown on purchase orders and sale receipts.
func GenerateShortIDWithPrefix(prefix string) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.ReplaceAll(id, "-", "")

	availableLen := 12 - len(prefix)
	if availableLen <= 0 {
		return ""
	}

	if len(id) > availableLen {
		id = id[:availableLen]
	}

	return strings.ToUpper(fmt.Sprintf("%s%s", prefix, id))
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_PLAN            = "plan"
	UUID_PREFIX_SUBSCRIPTION    = "subs"
	UUID_PREFIX_PRODUCT         = "prod"
	UUID_PREFIX_SUPPLIER        = "supp"
	UUID_PREFIX_CUSTOMER        = "cust"
	UUID_PREFIX_PURCHASE_ORDER  = "po"
	UUID_PREFIX_PURCHASE_ITEM   = "po_line"
	UUID_PREFIX_SALE            = "sale"
	UUID_PREFIX_SALE_ITEM       = "sale_line"
	UUID_PREFIX_INVENTORY_COUNT = "count"
	UUID_PREFIX_COUNT_LINE      = "count_line"
	UUID_PREFIX_CAMPAIGN        = "camp"
	UUID_PREFIX_MESSAGE         = "msg"
)

const (
	SHORT_ID_PREFIX_PURCHASE_ORDER = "PO-"
	SHORT_ID_PREFIX_SALE           = "SL-"
)
