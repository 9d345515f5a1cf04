package cinder

import "strings"

// DeleteByPrefix 刪除所有指定前綴的快取項目，回傳刪除的數量
func (c *Cache) DeleteByPrefix(prefix string) int {
	c.mu.Lock()
	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}
	c.mu.Unlock()

	c.metrics.Deletes.Add(int64(removed))
	return removed
}

// DeleteByTag 刪除指定標籤的快取項目，回傳刪除的數量
//
// Tagged keys follow the "tag:<tag>:<rest>" convention.
func (c *Cache) DeleteByTag(tag string) int {
	return c.DeleteByPrefix("tag:" + tag + ":")
}
