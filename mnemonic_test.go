package easywallet

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func Test_Mnemonic_ZeroEntropyVector(t *testing.T) {
	assert := assert.New(t)

	mnemonic, err := NewMnemonicFromEntropy(make([]byte, 16), English)
	assert.NoError(err)
	assert.Equal("abandon abandon abandon abandon abandon abandon abandon "+
		"abandon abandon abandon abandon about", mnemonic.Phrase())

	seed := mnemonic.Seed("TREZOR")
	assert.Equal("c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e5349553"+
		"1f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		ToHex(seed))
}

func Test_Mnemonic_KnownPhrases(t *testing.T) {
	assert := assert.New(t)

	// Trezor reference vectors.
	vectors := map[string]string{
		"7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f": "legal winner thank year wave " +
			"sausage worth useful legal winner thank yellow",
		"80808080808080808080808080808080": "letter advice cage absurd amount " +
			"doctor acute avoid letter advice cage above",
		"ffffffffffffffffffffffffffffffff": "zoo zoo zoo zoo zoo zoo zoo zoo " +
			"zoo zoo zoo wrong",
	}
	for entropyHex, phrase := range vectors {
		entropy, err := FromHex(entropyHex)
		assert.NoError(err)
		mnemonic, err := NewMnemonicFromEntropy(entropy, English)
		assert.NoError(err)
		assert.Equal(phrase, mnemonic.Phrase())
	}
}

func Test_Mnemonic_ZeroEntropy24Words(t *testing.T) {
	assert := assert.New(t)

	mnemonic, err := NewMnemonicFromEntropy(make([]byte, 32), English)
	assert.NoError(err)
	words := strings.Fields(mnemonic.Phrase())
	assert.Len(words, 24)
	assert.Equal("art", words[23])
}

func Test_Mnemonic_WordCounts(t *testing.T) {
	assert := assert.New(t)

	wordCounts := map[int]int{128: 12, 160: 15, 192: 18, 224: 21, 256: 24}
	for bits, count := range wordCounts {
		mnemonic, err := NewMnemonic(rand.Reader, bits, English)
		assert.NoError(err)
		assert.Len(strings.Fields(mnemonic.Phrase()), count)
		assert.Len(mnemonic.Entropy(), bits/8)
	}
}

func Test_Mnemonic_InvalidEntropyLength(t *testing.T) {
	assert := assert.New(t)

	_, err := NewMnemonic(rand.Reader, 100, English)
	assert.ErrorIs(err, ErrInvalidEntropyLength)
	_, err = NewMnemonicFromEntropy(make([]byte, 17), English)
	assert.ErrorIs(err, ErrInvalidEntropyLength)
	_, err = NewMnemonicFromEntropy(nil, English)
	assert.ErrorIs(err, ErrInvalidEntropyLength)
}

func Test_Mnemonic_PhraseRoundtrip(t *testing.T) {
	assert := assert.New(t)

	for _, bits := range []int{128, 160, 192, 224, 256} {
		mnemonic, err := NewMnemonic(rand.Reader, bits, English)
		assert.NoError(err)

		restored, err := NewMnemonicFromPhrase(mnemonic.Phrase(), English)
		assert.NoError(err)
		assert.Equal(mnemonic.Entropy(), restored.Entropy())
		assert.Equal(mnemonic.Phrase(), restored.Phrase())
		assert.Equal(mnemonic.Seed(""), restored.Seed(""))
	}
}

func Test_Mnemonic_FromPhraseErrors(t *testing.T) {
	assert := assert.New(t)

	// Unknown word.
	_, err := NewMnemonicFromPhrase("abandon abandon abandon abandon abandon "+
		"abandon abandon abandon abandon abandon abandon blockchain", English)
	assert.ErrorIs(err, ErrInvalidWord)

	// Wrong word count.
	_, err = NewMnemonicFromPhrase("abandon abandon about", English)
	assert.ErrorIs(err, ErrInvalidMnemonic)

	// Correct words, broken checksum.
	_, err = NewMnemonicFromPhrase("abandon abandon abandon abandon abandon "+
		"abandon abandon abandon abandon abandon abandon abandon", English)
	assert.ErrorIs(err, ErrInvalidMnemonic)
}

func Test_Mnemonic_ComposedInput(t *testing.T) {
	assert := assert.New(t)

	// Japanese words carry dakuten marks, which NFC composes into single
	// codepoints; the phrase must parse however the input was composed.
	mnemonic, err := NewMnemonicFromEntropy(make([]byte, 16), Japanese)
	assert.NoError(err)

	composed := norm.NFC.String(mnemonic.Phrase())
	restored, err := NewMnemonicFromPhrase(composed, Japanese)
	assert.NoError(err)
	assert.Equal(mnemonic.Entropy(), restored.Entropy())
	assert.Equal(mnemonic.Seed("x"), restored.Seed("x"))

	// Ideographic-space separators are accepted too.
	spaced := strings.ReplaceAll(composed, " ", "　")
	restored, err = NewMnemonicFromPhrase(spaced, Japanese)
	assert.NoError(err)
	assert.Equal(mnemonic.Entropy(), restored.Entropy())
}

func Test_Mnemonic_SeedPassphrase(t *testing.T) {
	assert := assert.New(t)

	mnemonic, err := NewMnemonicFromEntropy(make([]byte, 16), English)
	assert.NoError(err)
	assert.Len(mnemonic.Seed(""), 64)
	assert.NotEqual(mnemonic.Seed(""), mnemonic.Seed("TREZOR"))

	// Referential transparency: same inputs, same seed.
	assert.Equal(mnemonic.Seed("x"), mnemonic.Seed("x"))
}

func Test_Wordlist_New(t *testing.T) {
	assert := assert.New(t)

	_, err := NewWordlist([]string{"too", "short"})
	assert.ErrorIs(err, ErrInvalidLength)

	words := make([]string, WordlistSize)
	for i := range words {
		words[i] = "same"
	}
	_, err = NewWordlist(words)
	assert.ErrorIs(err, ErrInvalidWord)
}

func Test_Wordlist_Lookup(t *testing.T) {
	assert := assert.New(t)

	word, ok := English.Word(0)
	assert.True(ok)
	assert.Equal("abandon", word)

	index, ok := English.Index("abandon")
	assert.True(ok)
	assert.Equal(0, index)

	_, ok = English.Word(WordlistSize)
	assert.False(ok)
	_, ok = English.Index("not-a-word")
	assert.False(ok)

	// Every language table has exactly 2048 words by construction; spot
	// check a couple of them.
	_, ok = Japanese.Word(2047)
	assert.True(ok)
	_, ok = Spanish.Word(2047)
	assert.True(ok)
}
