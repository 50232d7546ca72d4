package schema

// Message shapes of the reference deployment: a CW20 token that wraps the
// chain's native denom. Replace these descriptors to serve another contract.

func cw20QueryMsg() *Schema {
	page := []Field{
		Str("start_after", "Return results after this key").Optional(),
		Num("limit", "Maximum number of results (contract caps at 30)").Optional(),
	}

	return MustNew("QueryMsg", "Query entry points of the wrapped native token contract",
		Variant{
			Name:        "balance",
			Description: "Returns the current balance of the given address, 0 if unset.",
			Fields:      []Field{Str("address", "Account address")},
		},
		Variant{
			Name:        "token_info",
			Description: "Returns metadata on the contract: name, decimals, supply, etc.",
		},
		Variant{
			Name:        "minter",
			Description: "Returns who can mint and the hard cap on maximum tokens after minting.",
		},
		Variant{
			Name:        "allowance",
			Description: "Returns how much spender can use from owner account, 0 if unset.",
			Fields: []Field{
				Str("owner", "Address holding the tokens"),
				Str("spender", "Address allowed to spend"),
			},
		},
		Variant{
			Name:        "all_allowances",
			Description: "Returns all allowances this owner has approved. Supports pagination.",
			Fields:      append([]Field{Str("owner", "Address holding the tokens")}, page...),
		},
		Variant{
			Name:        "all_spender_allowances",
			Description: "Returns all allowances this spender has been granted. Supports pagination.",
			Fields:      append([]Field{Str("spender", "Address allowed to spend")}, page...),
		},
		Variant{
			Name:        "all_accounts",
			Description: "Returns all accounts that have balances. Supports pagination.",
			Fields:      page,
		},
		Variant{
			Name:        "marketing_info",
			Description: "Returns marketing-related metadata: project, description, marketing address and logo.",
		},
		Variant{
			Name:        "wrapped_denom",
			Description: "Returns the native denom backing the token.",
		},
	)
}

func cw20ExecuteMsg() *Schema {
	expiration := Obj("expires", "When the allowance expires; set exactly one member",
		Num("at_height", "Block height").Optional(),
		Uint64("at_time", "Unix time in nanoseconds").Optional(),
		Obj("never", "Never expires").Optional(),
	).Optional()

	return MustNew("ExecuteMsg", "Execute entry points of the wrapped native token contract",
		Variant{
			Name:        "deposit",
			Description: "Wraps the attached native funds and mints the same amount of tokens to the sender.",
			Payable:     true,
		},
		Variant{
			Name:        "withdraw",
			Description: "Burns tokens from the sender and returns the same amount of native funds.",
			Fields:      []Field{Uint128("amount", "Amount of tokens to unwrap")},
		},
		Variant{
			Name:        "transfer",
			Description: "Moves tokens to another account without triggering actions.",
			Fields: []Field{
				Str("recipient", "Receiving address"),
				Uint128("amount", "Amount of tokens"),
			},
		},
		Variant{
			Name:        "batch_transfer",
			Description: "Moves tokens to several accounts in one message.",
			Fields: []Field{
				Arr("transfers", "Transfers applied in order",
					Obj("", "", Str("recipient", "Receiving address"), Uint128("amount", "Amount of tokens"))),
			},
		},
		Variant{
			Name:        "burn",
			Description: "Destroys tokens forever.",
			Fields:      []Field{Uint128("amount", "Amount of tokens")},
		},
		Variant{
			Name:        "send",
			Description: "Transfers tokens to a contract and triggers its Receive hook with msg.",
			Fields: []Field{
				Str("contract", "Receiving contract address"),
				Uint128("amount", "Amount of tokens"),
				Str("msg", "Base64-encoded message passed to the receiver"),
			},
		},
		Variant{
			Name:        "increase_allowance",
			Description: "Lets spender use up to amount more tokens from the owner account.",
			Fields: []Field{
				Str("spender", "Address allowed to spend"),
				Uint128("amount", "Additional allowance"),
				expiration,
			},
		},
		Variant{
			Name:        "decrease_allowance",
			Description: "Lowers the spender's allowance by amount; removes it when it reaches zero.",
			Fields: []Field{
				Str("spender", "Address allowed to spend"),
				Uint128("amount", "Allowance reduction"),
				expiration,
			},
		},
		Variant{
			Name:        "transfer_from",
			Description: "Transfers amount from owner to recipient using a previously granted allowance.",
			Fields: []Field{
				Str("owner", "Address holding the tokens"),
				Str("recipient", "Receiving address"),
				Uint128("amount", "Amount of tokens"),
			},
		},
		Variant{
			Name:        "burn_from",
			Description: "Burns tokens from owner using a previously granted allowance.",
			Fields: []Field{
				Str("owner", "Address holding the tokens"),
				Uint128("amount", "Amount of tokens"),
			},
		},
		Variant{
			Name:        "update_marketing",
			Description: "Updates marketing metadata. Only the marketing address may call this.",
			Fields: []Field{
				Str("project", "Project URL").Optional(),
				Str("description", "Longer description of the token").Optional(),
				Str("marketing", "New marketing address").Optional(),
			},
		},
	)
}
