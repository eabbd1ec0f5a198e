package avro

// ReadArrayBlocks drives the Avro array block-framing algorithm: one or
// more blocks of [long count, count items], terminated by a count of
// zero. A negative count is followed by a byte-size long (the number
// of bytes in the block), which this implementation skips over having
// noted the item count as its absolute value — Avro producers use the
// negative form to let a consumer skip an entire block without
// decoding its items, but this engine always decodes items directly.
// item is invoked once per element with the running index.
func (t *Tap) ReadArrayBlocks(item func(index int)) {
	index := 0
	for {
		count := t.ReadLong()
		if t.truncated {
			return
		}
		if count == 0 {
			return
		}
		if count < 0 {
			t.ReadLong() // block byte size, unused
			count = -count
		}
		for i := int64(0); i < count; i++ {
			item(index)
			index++
			if t.truncated {
				return
			}
		}
	}
}

// WriteArrayBlocks writes a single block of [count, items..., 0]. When
// n is 0, the leading zero-length IS the terminator: no separate empty
// block is written.
func (t *Tap) WriteArrayBlocks(n int, item func(index int)) {
	if n <= 0 {
		t.WriteLong(0)
		return
	}
	t.WriteLong(int64(n))
	for i := 0; i < n; i++ {
		item(i)
	}
	t.WriteLong(0)
}

// ReadMapBlocks is ReadArrayBlocks's map counterpart: each item is
// preceded by its string key, which entry receives directly.
func (t *Tap) ReadMapBlocks(entry func(key string)) {
	for {
		count := t.ReadLong()
		if t.truncated {
			return
		}
		if count == 0 {
			return
		}
		if count < 0 {
			t.ReadLong() // block byte size, unused
			count = -count
		}
		for i := int64(0); i < count; i++ {
			key := t.ReadString()
			if t.truncated {
				return
			}
			entry(key)
			if t.truncated {
				return
			}
		}
	}
}

// WriteMapBlocks writes a single block of [count, (key, value)..., 0].
func (t *Tap) WriteMapBlocks(keys []string, entry func(key string)) {
	n := len(keys)
	if n == 0 {
		t.WriteLong(0)
		return
	}
	t.WriteLong(int64(n))
	for _, k := range keys {
		t.WriteString(k)
		entry(k)
	}
	t.WriteLong(0)
}
