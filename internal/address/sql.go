package address

const getAddressSQL = `
SELECT id, customer_id, address_details, city, state, pin_code, is_default
FROM addresses
WHERE id = ?
`

const getForCustomerSQL = `
SELECT id, customer_id, address_details, city, state, pin_code, is_default
FROM addresses
WHERE customer_id = ?
ORDER BY id
`

const createAddressSQL = `
INSERT INTO addresses (customer_id, address_details, city, state, pin_code, is_default)
VALUES (?, ?, ?, ?, ?, ?)
`

const updateAddressSQL = `
UPDATE addresses
SET address_details = ?, city = ?, state = ?, pin_code = ?, is_default = ?
WHERE id = ?
`

const deleteAddressSQL = `
DELETE FROM addresses
WHERE id = ?
`

const clearDefaultsSQL = `
UPDATE addresses
SET is_default = 0
WHERE customer_id = ? AND id <> ?
`

const getCustomerIDSQL = `
SELECT customer_id
FROM addresses
WHERE id = ?
`
