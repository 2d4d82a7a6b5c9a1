package customer

const getCustomerSQL = `
SELECT id, first_name, last_name, phone_number
FROM customers
WHERE id = ?
`

const createCustomerSQL = `
INSERT INTO customers (first_name, last_name, phone_number)
VALUES (?, ?, ?)
`

const updateCustomerSQL = `
UPDATE customers
SET first_name = ?, last_name = ?, phone_number = ?
WHERE id = ?
`

const deleteCustomerSQL = `
DELETE FROM customers
WHERE id = ?
`

const customerExistsSQL = `
SELECT EXISTS(
    SELECT 1 FROM customers WHERE id = ?
)
`

const countCustomersSQL = `
SELECT COUNT(*)
FROM customers c
`

const listCustomersSQL = `
SELECT
    c.id, c.first_name, c.last_name, c.phone_number,
    (SELECT COUNT(*) FROM addresses a WHERE a.customer_id = c.id) AS address_count
FROM customers c
`
