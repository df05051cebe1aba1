/*

Package aswap implements an atomic swap of two tokens with a premium.

Two counterparties, an initiator and a participant, exchange two different
tokens. Both deposits are locked by the same sha256 hash (the swap key) and
each deposit has its own expiry time.

Because the participant could accept the terms and then never show up,
leaving the initiator's funds locked until expiry, the initiator must first
deposit a premium. The premium goes to the participant once the participant
deposited and the deposit was settled, win or lose. If the participant never
deposited, the initiator takes the premium back after it expires.

The algorithm is as follows:
1. Initiator generates a secret, stores it in a secure place and uses its
sha256 hash as the swap key.
2. Initiator registers the swap terms (setup).
3. Initiator deposits the premium (fillPremium) and the asset A (initiate).
4. Participant deposits the asset B (participate). This is only possible once
the premium is deposited.
5. Participant redeems asset A by revealing the secret. Now that the secret is
public, initiator redeems asset B.
6. Participant redeems the premium.

A deposit that was not redeemed before its expiry can only be refunded to
its depositor. All deposits are held by a single escrow account owned by this
extension.

Every record of a swap moves through the same lifecycle:

	Empty -> Filled -> Redeemed
	               \-> Refunded

*/
package aswap
