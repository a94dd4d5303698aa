package kmipclient

import (
	"context"

	"github.com/openkmip/kmipclient/internal/log"
	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/message"
	"github.com/openkmip/kmipclient/ttlv"
)

// LocateAll returns the unique identifiers of every object of
// objectType, paging through the full result set.
func (c *Client) LocateAll(ctx context.Context, objectType kmip14.ObjectType) ([]string, error) {
	return c.locatePages(ctx, "LocateAll", func(maxItems, offset int32) *ttlv.Structure {
		return message.BuildLocateAllRequest(maxItems, offset, objectType)
	})
}

// LocateByName returns the unique identifiers of objects of objectType
// named name, paging through the full result set.
func (c *Client) LocateByName(ctx context.Context, objectType kmip14.ObjectType, name string) ([]string, error) {
	return c.locatePages(ctx, "LocateByName", func(maxItems, offset int32) *ttlv.Structure {
		return message.BuildLocateByNameRequest(maxItems, offset, objectType, name)
	})
}

// LocateByGroup returns the unique identifiers of objects of
// objectType belonging to group, paging through the full result set.
func (c *Client) LocateByGroup(ctx context.Context, objectType kmip14.ObjectType, group string) ([]string, error) {
	return c.locatePages(ctx, "LocateByGroup", func(maxItems, offset int32) *ttlv.Structure {
		return message.BuildLocateByGroupRequest(maxItems, offset, objectType, group)
	})
}

// locatePages implements the §4.4 Locate paging algorithm: page at
// the configured size starting at offset 0. When a page carries a
// nonzero located_items total, that total alone decides termination:
// the loop stops once at least that many ids have been collected, and
// a short page does not stop it. When located_items is absent or
// zero, the loop stops at the first page with fewer than a full page
// of ids.
func (c *Client) locatePages(ctx context.Context, op string, build func(maxItems, offset int32) *ttlv.Structure) ([]string, error) {
	pageSize := c.cfg.locatePageSize
	var ids []string
	offset := int32(0)

	for {
		item, err := c.exchange(ctx, kmip14.OperationLocate, build(pageSize, offset))
		if err != nil {
			return nil, err
		}

		page, err := message.ExtractLocateResponse(item.Payload)
		if err != nil {
			return nil, wrapExtractError(op, err)
		}

		ids = append(ids, page.IDs...)
		offset += int32(len(page.IDs))
		log.ExtendedLog(ctx, "kmipclient: %s page returned %d ids, %d total so far", op, len(page.IDs), len(ids))

		if page.HasLocatedItems && page.LocatedItems > 0 {
			if int32(len(ids)) >= page.LocatedItems {
				break
			}

			continue
		}
		if int32(len(page.IDs)) < pageSize {
			break
		}
	}

	return ids, nil
}
