package handlers

// Instructions is advertised to MCP clients on initialize.
const Instructions = `This MCP server provides tools for aiding with queries and transactions to a
deployed version of a contract. It does not broadcast these queries or txs, nor
does it sign the txs.

It allows users to perform the following actions:
- List available contract addresses and their associated network and chain id
  ('list_contract_deployments')
- List the available query entry points, and any parameters required for
  building them ('list_query_entry_points')
- Build a query message that can be broadcast by any RPC enabled tool
  ('build_query_msg')
- List the available execute (tx) entry points, and any parameters required
  for building them ('list_tx_entry_points')
- Build an execute message (tx message) that can be signed and broadcast by any
  RPC enabled tool with wallet signing capabilities ('build_execute_msg')`

const listDeploymentsDescription = `Call this tool to get a list of contract addresses where the contract has been
deployed. This tool is helpful for discovering the mainnet and testnet contract
addresses for the smart contract, together with their chain id and the native
denom attached to payable transactions.`

const listQueryEntryPointsDescription = `Call this tool to get a list of possible queries that can be made (e.g. query
entry points) to the contract, as well as their associated calling parameters.
This tool is helpful for discovering what parameters a user must provide in
order to build a prepared query message for a query to the smart contract.

The response provided from this tool is a JSON schema for the QueryMsg enum of
the smart contract. It would be too verbose to provide it to your chat partner,
so summarizing it will be crucial.`

const buildQueryMsgDescription = `Call this tool to build a prepared query message for a query to the contract.
This tool won't broadcast the query or return the query result, but can be
combined with any RPC connected query tool that accepts a well-formed Cosmos
QueryRequest.

There are two calling parameters required when calling this tool: 1) the
contract address ('contract_addr'), e.g. the mainnet or testnet contract
address; for deriving the deployed contract addresses, see tool:
'list_contract_deployments'; 2) the QueryMsg variant ('query_msg') to be built
into a Cosmos QueryRequest; for deriving the appropriate QueryMsg variant (and
the calling variant's parameters), see tool: 'list_query_entry_points'.`

const listTxEntryPointsDescription = `Call this tool to get a list of possible transactions that can be made (e.g.
execute entry points) to the contract, as well as their associated calling
parameters. This tool is helpful for discovering what parameters a user must
provide in order to build a prepared execute message for a tx to the smart
contract. Variants marked "x-payable" accept native funds.

The response provided from this tool is a JSON schema for the ExecuteMsg enum
of the contract. It would be too verbose to provide it to your chat partner,
so summarizing it will be crucial.`

const buildExecuteMsgDescription = `Call this tool to build a prepared execute message for a transaction to the
smart contract. This tool won't sign the message, or broadcast it to the
blockchain, but can be combined with any RPC connected tx tool that accepts a
well-formed CosmosMsg for an ExecuteMsg variant for any valid execute (tx)
entry point to the contract.

The calling parameters are: the contract address ('contract_addr', e.g. either
the mainnet or testnet contract address; see tool: 'list_contract_deployments'),
the ExecuteMsg variant ('execute_msg') to be built into a CosmosMsg that can be
signed and broadcast by an RPC connected signing wallet, and optionally the
amount of native funds ('payment') to send in the transaction. Funds may only
be attached to payable variants.`
