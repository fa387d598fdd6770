package crypto

import "fmt"

// ReencryptWallet re-encrypts the key file under newPassword with a fresh salt
// and nonce. Address and QR are kept as is.
func ReencryptWallet(filePath string, oldPassword, newPassword []byte) error {
	cwtFile, walletData, err := DecryptWallet(filePath, oldPassword)
	if err != nil {
		return err
	}
	defer clear(walletData.PrivateKey)

	sealed, err := seal(walletData, newPassword)
	if err != nil {
		return err
	}
	sealed.Network = cwtFile.Network
	sealed.Address = cwtFile.Address
	sealed.QR = cwtFile.QR

	if err := writeCWTFile(filePath, sealed); err != nil {
		return fmt.Errorf("failed to rewrite wallet: %w", err)
	}
	return nil
}
