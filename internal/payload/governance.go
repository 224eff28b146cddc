package payload

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/loykin/demosync/internal/postman"
	"github.com/tidwall/gjson"
)

// RequiredPrefix is the only naming rule enforced on collections.
const RequiredPrefix = "Enterprise"

// GovernanceError reports a collection name that fails the naming rule.
type GovernanceError struct {
	Name string
}

func (e *GovernanceError) Error() string {
	return fmt.Sprintf("collection %q violates governance: name must start with %q", e.Name, RequiredPrefix)
}

// CheckGovernance rejects a collection whose name lacks RequiredPrefix.
func CheckGovernance(name string) error {
	if !strings.HasPrefix(name, RequiredPrefix) {
		return &GovernanceError{Name: name}
	}
	return nil
}

// CollectionName returns info.name of a built or imported collection.
func CollectionName(coll any) string {
	switch c := coll.(type) {
	case postman.Collection:
		return c.Info.Name
	case *postman.Collection:
		return c.Info.Name
	case json.RawMessage:
		return gjson.GetBytes(c, "info.name").String()
	case []byte:
		return gjson.GetBytes(c, "info.name").String()
	default:
		return ""
	}
}
