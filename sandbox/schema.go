package sandbox

// Schema is the subset of the remote commerce API this client consumes.
var Schema = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	ping: String!
	product(productId: ID!, shopId: ID!): Product
	simpleInventory(productId: ID!, productVariantId: ID!, shopId: ID!): InventoryInfo
}

type Mutation {
	archiveProducts(productIds: [ID!]!, shopId: ID!): ProductsPayload!
	cloneProducts(productIds: [ID!]!, shopId: ID!): ProductsPayload!
	createProductVariant(productId: ID!, shopId: ID!): VariantPayload!
	updateProduct(productId: ID!, shopId: ID!, product: ProductInput!): ProductPayload!
	updateProductVariant(variantId: ID!, shopId: ID!, variant: VariantInput!): VariantPayload!
	updateSimpleInventory(productId: ID!, productVariantId: ID!, shopId: ID!, input: InventoryInput!): InventoryInfo!
	recalculateReservedSimpleInventory(productId: ID!, productVariantId: ID!, shopId: ID!): InventoryInfo!
}

type Product {
	_id: ID!
	title: String
	description: String
	isVisible: Boolean!
	shopId: ID!
	tags: [Tag!]!
	socialMetadata: [SocialMetadata!]!
	variants: [Variant!]!
}

type Variant {
	_id: ID!
	title: String
	sku: String
	price: Float
	isVisible: Boolean!
	options: [Option!]!
}

type Option {
	_id: ID!
	title: String
	sku: String
	price: Float
	isVisible: Boolean!
}

type Tag {
	_id: ID!
	name: String!
}

type SocialMetadata {
	service: String!
	message: String!
}

type InventoryInfo {
	inventoryInStock: Int
	inventoryReserved: Int
	lowInventoryWarningThreshold: Int
	canBackorder: Boolean!
	isEnabled: Boolean!
}

type ProductsPayload {
	products: [Product!]!
}

type ProductPayload {
	product: Product
}

type VariantPayload {
	variant: Variant
}

input ProductInput {
	title: String
	description: String
	isVisible: Boolean
	tagIds: [ID!]
}

input VariantInput {
	title: String
	sku: String
	price: Float
	isVisible: Boolean
}

input InventoryInput {
	inventoryInStock: Int
	lowInventoryWarningThreshold: Int
	canBackorder: Boolean!
	isEnabled: Boolean!
}
`
