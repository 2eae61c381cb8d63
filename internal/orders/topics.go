package orders

import "strconv"

// Semua event lifecycle lewat satu topic; jenis event ada di header +
// envelope.
const TopicOrderLifecycle = "order.lifecycle"

// Partition key = order id, supaya semua event 1 order maintain urutan.
func PartitionKey(orderID int64) []byte {
	return []byte(strconv.FormatInt(orderID, 10))
}
